package bw

import "context"

// DefaultAPIBaseURL is the backend address used until one is configured.
const DefaultAPIBaseURL = "http://localhost:8000"

// ConfigService reads and writes persisted configuration.
type ConfigService interface {
	// APIBaseURL returns the configured backend base URL, or
	// DefaultAPIBaseURL when none is stored.
	APIBaseURL(ctx context.Context) (string, error)

	// SetAPIBaseURL stores the backend base URL.
	SetAPIBaseURL(ctx context.Context, baseURL string) error
}
