package bw

import "context"

// Page is the raw HTML of a page together with where it came from.
type Page struct {
	URL         string
	ContentType string
	HTML        string
}

// Fetcher retrieves pages from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url. The returned URL is the final URL
	// after redirects.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases resources held by the fetcher.
	Close() error
}
