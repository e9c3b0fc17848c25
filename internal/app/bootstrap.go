package app

import (
	"context"
	"log/slog"
	"time"

	"cryptobuddy/internal/chat"
	"cryptobuddy/internal/infra"
	"cryptobuddy/internal/knowledge"
)

// Bootstrap orchestrates the application startup sequence.
type Bootstrap struct {
	Config  *infra.Config
	KB      *knowledge.Base
	Session *chat.Session
}

// NewBootstrap creates a new Bootstrap instance.
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads the configuration, sets up logging and wires the chat
// pipeline: knowledge base, price client, session.
func (b *Bootstrap) Initialize(configPath string) error {
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	b.KB = knowledge.NewBase(cfg.CoinRecords())
	slog.Info("✅ Knowledge base loaded", "coins", b.KB.Len())

	client := infra.NewCoinGeckoClient(cfg, logger)
	refreshEvery := time.Duration(cfg.Chat.RefreshIntervalSec) * time.Second
	b.Session = chat.NewSession(b.KB, client, logger, refreshEvery)

	return nil
}

// WarmUp runs the startup price fetch. Failure is soft; the assistant
// answers from static data until a later refresh succeeds.
func (b *Bootstrap) WarmUp(ctx context.Context) {
	slog.Info("📡 Fetching live prices...")
	b.Session.WarmUp(ctx)
}
