package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cryptobuddy/internal/knowledge"

	"github.com/shopspring/decimal"
)

// CoinGecko public tier allows roughly 30 calls/min; the chat session's
// refresh throttle keeps usage far below that, so no limiter is enforced
// here.

// FetchError wraps any transport, status or decode failure during a refresh.
// When it is returned the knowledge base has not been touched and callers
// should keep serving the previous values.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("price refresh failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// CoinGeckoClient fetches bulk spot prices from the CoinGecko simple-price
// endpoint.
type CoinGeckoClient struct {
	baseURL    string
	apiKey     string
	currency   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCoinGeckoClient creates a price client from the application config.
func NewCoinGeckoClient(cfg *Config, logger *slog.Logger) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL:  strings.TrimRight(cfg.API.CoinGecko.BaseURL, "/"),
		apiKey:   cfg.API.CoinGecko.APIKey,
		currency: strings.ToLower(cfg.API.CoinGecko.Currency),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.API.CoinGecko.TimeoutSec) * time.Second,
		},
		logger: logger.With("component", "coingecko"),
	}
}

// Refresh issues one bulk price request for ids and writes each well-formed
// entry into kb. Ids missing from the response or carrying malformed fields
// are skipped individually. On any request-level failure a *FetchError is
// returned and kb is left unchanged. One attempt only; retrying is the
// caller's business.
func (c *CoinGeckoClient) Refresh(ctx context.Context, kb *knowledge.Base, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	query.Set("vs_currencies", c.currency)
	query.Set("include_24hr_change", "true")
	endpoint := fmt.Sprintf("%s/simple/price?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &FetchError{Err: err}
	}
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Err: err}
	}

	var payload map[string]map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return &FetchError{Err: fmt.Errorf("unparseable payload: %w", err)}
	}
	if payload == nil {
		// "null" decodes into a nil map without an error.
		return &FetchError{Err: fmt.Errorf("unexpected payload shape")}
	}

	changeKey := c.currency + "_24h_change"
	updated := 0
	for _, id := range ids {
		entry, ok := payload[strings.ToLower(id)]
		if !ok {
			c.logger.Warn("Coin missing from response", "id", id)
			continue
		}

		rawPrice, ok := entry[c.currency].(float64)
		if !ok {
			c.logger.Warn("Malformed price entry skipped", "id", id)
			continue
		}

		// The change field is optional; a missing value means flat.
		changePct := 0.0
		if rawChange, present := entry[changeKey]; present {
			f, ok := rawChange.(float64)
			if !ok {
				c.logger.Warn("Malformed change entry skipped", "id", id)
				continue
			}
			changePct = f
		}

		if kb.Update(id, decimal.NewFromFloat(rawPrice), changePct) {
			updated++
		}
	}

	c.logger.Info("Prices refreshed", "requested", len(ids), "updated", updated)
	return nil
}
