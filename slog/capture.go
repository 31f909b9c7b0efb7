package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bw"
)

// Ensure LoggingCaptureService implements bw.CaptureService.
var _ bw.CaptureService = (*LoggingCaptureService)(nil)

// LoggingCaptureService wraps a CaptureService with logging.
type LoggingCaptureService struct {
	next   bw.CaptureService
	logger *slog.Logger
}

// NewLoggingCaptureService creates a new LoggingCaptureService.
func NewLoggingCaptureService(next bw.CaptureService, logger *slog.Logger) *LoggingCaptureService {
	return &LoggingCaptureService{next: next, logger: logger}
}

// EnqueueCapture logs the submission and delegates to the wrapped service.
func (s *LoggingCaptureService) EnqueueCapture(ctx context.Context, c *bw.Capture) (err error) {
	defer func(begin time.Time) {
		var mode bw.ExtractionMode
		var chars int
		if c != nil && c.Payload != nil {
			mode = c.Payload.ModeUsed
			chars = c.Payload.Meta.ExtractionCharCount
		}
		s.logger.Info("enqueue capture",
			"id", captureID(c),
			"mode", string(mode),
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.EnqueueCapture(ctx, c)
}

func captureID(c *bw.Capture) string {
	if c == nil {
		return ""
	}
	return c.ID
}
