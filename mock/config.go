package mock

import (
	"context"

	"github.com/fwojciec/bw"
)

var _ bw.ConfigService = (*ConfigService)(nil)

// ConfigService is a mock implementation of bw.ConfigService.
type ConfigService struct {
	APIBaseURLFn    func(ctx context.Context) (string, error)
	SetAPIBaseURLFn func(ctx context.Context, baseURL string) error
}

func (s *ConfigService) APIBaseURL(ctx context.Context) (string, error) {
	return s.APIBaseURLFn(ctx)
}

func (s *ConfigService) SetAPIBaseURL(ctx context.Context, baseURL string) error {
	return s.SetAPIBaseURLFn(ctx, baseURL)
}
