package mock

import (
	"context"

	"github.com/fwojciec/bw"
)

var _ bw.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of bw.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*bw.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*bw.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
