package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fwojciec/bw"
)

var _ bw.QuoteService = (*QuoteService)(nil)

// QuoteService looks up stored quotes through the backend API.
type QuoteService struct {
	client *Client
}

// NewQuoteService creates a QuoteService.
func NewQuoteService(c *Client) *QuoteService {
	return &QuoteService{client: c}
}

type quotesResponse struct {
	Quotes []*bw.Quote `json:"quotes"`
}

// FindQuotesBySource returns the quotes captured from sourceURL.
func (s *QuoteService) FindQuotesBySource(ctx context.Context, sourceURL string) ([]*bw.Quote, error) {
	target, err := s.client.endpoint(ctx, "/quotes/by_source", url.Values{"url": {sourceURL}})
	if err != nil {
		return nil, err
	}

	var resp quotesResponse
	if err := s.client.do(ctx, http.MethodGet, target, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Quotes == nil {
		return []*bw.Quote{}, nil
	}
	return resp.Quotes, nil
}
