package mock

import (
	"context"

	"github.com/fwojciec/bw"
)

var _ bw.QuoteService = (*QuoteService)(nil)

// QuoteService is a mock implementation of bw.QuoteService.
type QuoteService struct {
	FindQuotesBySourceFn func(ctx context.Context, sourceURL string) ([]*bw.Quote, error)
}

func (s *QuoteService) FindQuotesBySource(ctx context.Context, sourceURL string) ([]*bw.Quote, error) {
	return s.FindQuotesBySourceFn(ctx, sourceURL)
}
