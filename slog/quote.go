package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bw"
)

// Ensure LoggingQuoteService implements bw.QuoteService.
var _ bw.QuoteService = (*LoggingQuoteService)(nil)

// LoggingQuoteService wraps a QuoteService with logging.
type LoggingQuoteService struct {
	next   bw.QuoteService
	logger *slog.Logger
}

// NewLoggingQuoteService creates a new LoggingQuoteService.
func NewLoggingQuoteService(next bw.QuoteService, logger *slog.Logger) *LoggingQuoteService {
	return &LoggingQuoteService{next: next, logger: logger}
}

// FindQuotesBySource logs the lookup and delegates to the wrapped service.
// Failures are logged at warning level.
func (s *LoggingQuoteService) FindQuotesBySource(ctx context.Context, sourceURL string) (quotes []*bw.Quote, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "find quotes",
			"url", sourceURL,
			"count", len(quotes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindQuotesBySource(ctx, sourceURL)
}
