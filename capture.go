package bw

import (
	"context"
	"time"
)

// Capture is an extraction result submitted to the backend for processing.
type Capture struct {
	ID         string            `json:"capture_id"`
	SourceURL  string            `json:"source_url"`
	CapturedAt time.Time         `json:"captured_at"`
	Payload    *ExtractionResult `json:"payload"`
}

// Validate returns an error if the capture contains invalid fields.
func (c *Capture) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "capture source URL required")
	}
	if c.Payload == nil {
		return Errorf(EINVALID, "capture payload required")
	}
	return nil
}

// CaptureService submits captures to the backend.
type CaptureService interface {
	// EnqueueCapture submits a capture. The ID and CapturedAt fields are
	// assigned when empty.
	EnqueueCapture(ctx context.Context, c *Capture) error
}
