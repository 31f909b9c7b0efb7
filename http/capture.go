package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/bw"
	"github.com/google/uuid"
)

var _ bw.CaptureService = (*CaptureService)(nil)

// CaptureService submits captures to the backend API.
type CaptureService struct {
	client *Client

	// Now returns the capture time. Defaults to time.Now.
	Now func() time.Time
}

// NewCaptureService creates a CaptureService.
func NewCaptureService(c *Client) *CaptureService {
	return &CaptureService{client: c, Now: time.Now}
}

// EnqueueCapture posts c to the capture endpoint. A missing ID is filled
// with a new UUID and a missing capture time with the current time.
func (s *CaptureService) EnqueueCapture(ctx context.Context, c *bw.Capture) error {
	if c == nil {
		return bw.Errorf(bw.EINVALID, "capture required")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CapturedAt.IsZero() {
		c.CapturedAt = s.Now().UTC()
	}

	target, err := s.client.endpoint(ctx, "/captures", nil)
	if err != nil {
		return err
	}
	return s.client.do(ctx, http.MethodPost, target, c, nil)
}
