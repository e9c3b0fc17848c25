package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"cryptobuddy/internal/advisor"
	"cryptobuddy/internal/intent"
	"cryptobuddy/internal/knowledge"
)

// StaleNotice is prepended to a reply when a live refresh failed and the
// answer is built from the previous data.
const StaleNotice = "📡 Live data could not be refreshed - showing the last known values.\n\n"

// Farewell ends the conversation.
const Farewell = "👋 Thanks for chatting! Remember - always do your own research."

// Refresher performs one live-price refresh attempt into the knowledge base.
type Refresher interface {
	Refresh(ctx context.Context, kb *knowledge.Base, ids []string) error
}

// Session runs the per-turn pipeline: classify, optionally refresh,
// recommend, format. One turn at a time; the knowledge base is owned here
// and accessed strictly sequentially.
type Session struct {
	kb         *knowledge.Base
	classifier *intent.Classifier
	engine     *advisor.Engine
	fetcher    Refresher
	logger     *slog.Logger

	refreshEvery time.Duration
	lastRefresh  time.Time
	now          func() time.Time
}

// NewSession assembles the pipeline around kb. refreshEvery throttles how
// often live-data intents trigger an outbound fetch; zero disables the
// throttle.
func NewSession(kb *knowledge.Base, fetcher Refresher, logger *slog.Logger, refreshEvery time.Duration) *Session {
	return &Session{
		kb:           kb,
		classifier:   intent.NewClassifier(kb.All()),
		engine:       advisor.NewEngine(kb),
		fetcher:      fetcher,
		logger:       logger.With("component", "chat"),
		refreshEvery: refreshEvery,
		now:          time.Now,
	}
}

// WarmUp performs the startup refresh. Failure is soft: the session keeps
// its static table and live data arrives on a later turn.
func (s *Session) WarmUp(ctx context.Context) {
	if err := s.fetcher.Refresh(ctx, s.kb, s.kb.IDs()); err != nil {
		s.logger.Warn("Initial price fetch failed, continuing with static data", "error", err)
		return
	}
	s.lastRefresh = s.now()
}

// Respond runs one user turn through the pipeline and returns the reply.
// The second result is false when the user asked to leave. Every failure
// path ends in a user-facing string; nothing here panics or aborts.
func (s *Session) Respond(ctx context.Context, text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "Please ask me something about the coins I track - or say \"help\".", true
	}
	if intent.IsExit(text) {
		return Farewell, false
	}

	it, ids := s.classifier.Classify(text)
	s.logger.Debug("Classified turn", "intent", it.String(), "coins", ids)

	notice := ""
	if needsLiveData(it) {
		if err := s.maybeRefresh(ctx); err != nil {
			notice = StaleNotice
		}
	}

	res, err := s.engine.Recommend(it, ids)
	if err != nil {
		var nf *advisor.NotFoundError
		if errors.As(err, &nf) {
			return notice + advisor.UnknownCoin(nf.ID, s.kb.All()), true
		}
		s.logger.Error("Recommendation failed", "error", err)
		return notice + "Something went wrong on my side - please try again.", true
	}

	return notice + advisor.Format(it, res), true
}

// needsLiveData reports whether an intent's answer depends on fresh prices.
func needsLiveData(it intent.Intent) bool {
	switch it {
	case intent.PriceQuery, intent.ProfitabilityQuery, intent.ComparisonQuery:
		return true
	}
	return false
}

// maybeRefresh runs one fetch attempt unless the last successful refresh is
// still fresh. A failed attempt does not advance the clock, so the next turn
// tries again.
func (s *Session) maybeRefresh(ctx context.Context) error {
	if !s.lastRefresh.IsZero() && s.now().Sub(s.lastRefresh) < s.refreshEvery {
		return nil
	}
	if err := s.fetcher.Refresh(ctx, s.kb, s.kb.IDs()); err != nil {
		s.logger.Warn("Refresh failed, keeping stale data", "error", err)
		return err
	}
	s.lastRefresh = s.now()
	return nil
}
