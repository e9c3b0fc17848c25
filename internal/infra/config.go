package infra

import (
	"fmt"
	"os"
	"strings"

	"cryptobuddy/internal/domain"

	"gopkg.in/yaml.v3"
)

// CoinEntry is one row of the static coin table. Sustainability score and
// the category fields are fixed policy data, not fetched.
type CoinEntry struct {
	ID                  string `yaml:"id"`     // CoinGecko slug
	Name                string `yaml:"name"`   // display name
	Symbol              string `yaml:"symbol"` // ticker symbol
	SustainabilityScore int    `yaml:"sustainability_score"`
	EnergyUse           string `yaml:"energy_use"`
	MarketCap           string `yaml:"market_cap"`
}

// Config holds the full application configuration. Values from the YAML file
// override the built-in defaults; environment variables override both.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		CoinGecko struct {
			BaseURL    string `yaml:"base_url"`
			APIKey     string `yaml:"api_key"`
			Currency   string `yaml:"currency"`
			TimeoutSec int    `yaml:"timeout_sec"`
		} `yaml:"coingecko"`
	} `yaml:"api"`

	Chat struct {
		RefreshIntervalSec int `yaml:"refresh_interval_sec"`
	} `yaml:"chat"`

	Coins []CoinEntry `yaml:"coins"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultConfig returns the built-in configuration, including the default
// five-coin table. Used as the base for file/env overrides and directly when
// no config file exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.App.Name = "CryptoBuddy"
	cfg.App.Version = "1.0.0"
	cfg.API.CoinGecko.BaseURL = "https://api.coingecko.com/api/v3"
	cfg.API.CoinGecko.Currency = "usd"
	cfg.API.CoinGecko.TimeoutSec = 10
	cfg.Chat.RefreshIntervalSec = 60
	cfg.Logging.Level = "info"
	cfg.Coins = []CoinEntry{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC", SustainabilityScore: 3, EnergyUse: "high", MarketCap: "high"},
		{ID: "ethereum", Name: "Ethereum", Symbol: "ETH", SustainabilityScore: 6, EnergyUse: "medium", MarketCap: "high"},
		{ID: "cardano", Name: "Cardano", Symbol: "ADA", SustainabilityScore: 8, EnergyUse: "low", MarketCap: "medium"},
		{ID: "solana", Name: "Solana", Symbol: "SOL", SustainabilityScore: 7, EnergyUse: "low", MarketCap: "high"},
		{ID: "matic-network", Name: "Polygon", Symbol: "MATIC", SustainabilityScore: 9, EnergyUse: "low", MarketCap: "medium"},
	}
	return cfg
}

// LoadConfig reads the configuration file at path on top of the defaults.
// An empty path or a missing file keeps the defaults. Environment variables
// override the file in either case.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.API.CoinGecko.BaseURL == "" || (!strings.HasPrefix(c.API.CoinGecko.BaseURL, "http://") && !strings.HasPrefix(c.API.CoinGecko.BaseURL, "https://")) {
		return fmt.Errorf("invalid CoinGecko base URL: %s", c.API.CoinGecko.BaseURL)
	}
	if c.API.CoinGecko.TimeoutSec <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.API.CoinGecko.Currency == "" {
		return fmt.Errorf("quote currency is required")
	}
	if c.Chat.RefreshIntervalSec < 0 {
		return fmt.Errorf("refresh interval must not be negative")
	}
	if len(c.Coins) == 0 {
		return fmt.Errorf("at least one tracked coin is required")
	}

	seen := make(map[string]bool, len(c.Coins))
	for _, coin := range c.Coins {
		if coin.ID == "" || coin.Name == "" {
			return fmt.Errorf("coin entries require id and name")
		}
		id := strings.ToLower(coin.ID)
		if seen[id] {
			return fmt.Errorf("duplicate coin id: %s", coin.ID)
		}
		seen[id] = true
		if coin.SustainabilityScore < 0 || coin.SustainabilityScore > 10 {
			return fmt.Errorf("coin %s: sustainability score %d out of range 0..10", coin.ID, coin.SustainabilityScore)
		}
		switch coin.EnergyUse {
		case "low", "medium", "high":
		default:
			return fmt.Errorf("coin %s: invalid energy_use %q", coin.ID, coin.EnergyUse)
		}
		switch coin.MarketCap {
		case "low", "medium", "high":
		default:
			return fmt.Errorf("coin %s: invalid market_cap %q", coin.ID, coin.MarketCap)
		}
	}
	return nil
}

// CoinRecords converts the static table into domain records, preserving
// declaration order.
func (c *Config) CoinRecords() []domain.CoinRecord {
	records := make([]domain.CoinRecord, 0, len(c.Coins))
	for _, coin := range c.Coins {
		records = append(records, domain.CoinRecord{
			ID:                  strings.ToLower(coin.ID),
			Name:                coin.Name,
			Symbol:              strings.ToUpper(coin.Symbol),
			SustainabilityScore: coin.SustainabilityScore,
			EnergyUse:           domain.Category(coin.EnergyUse),
			MarketCap:           domain.Category(coin.MarketCap),
			Trend:               domain.TrendUnknown,
		})
	}
	return records
}

// overrideWithEnv applies environment variables on top of file values, so
// API credentials never have to live in the config file.
func overrideWithEnv(cfg *Config) {
	if key := os.Getenv("CRYPTOBUDDY_API_KEY"); key != "" {
		cfg.API.CoinGecko.APIKey = key
	}
	if url := os.Getenv("CRYPTOBUDDY_API_URL"); url != "" {
		cfg.API.CoinGecko.BaseURL = url
	}
	if level := os.Getenv("CRYPTOBUDDY_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
