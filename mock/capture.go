package mock

import (
	"context"

	"github.com/fwojciec/bw"
)

var _ bw.CaptureService = (*CaptureService)(nil)

// CaptureService is a mock implementation of bw.CaptureService.
type CaptureService struct {
	EnqueueCaptureFn func(ctx context.Context, c *bw.Capture) error
}

func (s *CaptureService) EnqueueCapture(ctx context.Context, c *bw.Capture) error {
	return s.EnqueueCaptureFn(ctx, c)
}
