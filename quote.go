package bw

import "context"

// Quote is a previously captured text fragment owned by the backend.
type Quote struct {
	ID               string          `json:"quote_id"`
	Text             string          `json:"text"`
	Anchor           TextQuoteAnchor `json:"anchor"`
	AttachedConcepts []string        `json:"attached_concepts"`
	ClaimCount       int             `json:"claim_count"`
}

// QuoteService looks up quotes stored by the backend.
type QuoteService interface {
	// FindQuotesBySource returns the quotes captured from the given page URL.
	FindQuotesBySource(ctx context.Context, sourceURL string) ([]*Quote, error)
}
