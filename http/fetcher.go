package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/fwojciec/bw"
)

// Ensure Fetcher implements bw.Fetcher at compile time.
var _ bw.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static sites only.
type Fetcher struct {
	opts *options
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	return &Fetcher{opts: newOptions(opts)}
}

// Fetch retrieves the page at url, following redirects.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*bw.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, bw.Errorf(bw.EINVALID, "invalid URL %q: %v", url, err)
	}

	if f.opts.limiter != nil {
		if err := f.opts.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := f.opts.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &bw.Page{
		URL:         resp.Request.URL.String(),
		ContentType: resp.Header.Get("Content-Type"),
		HTML:        string(body),
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
