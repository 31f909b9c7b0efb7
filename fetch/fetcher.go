package fetch

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/bw"
)

// Ensure Fetcher implements bw.Fetcher at compile time.
var _ bw.Fetcher = (*Fetcher)(nil)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Fetcher wraps another fetcher. Each attempt waits for the host's turn,
// and attempts failing with anything other than a not-found or invalid
// request error are retried after the configured delays.
type Fetcher struct {
	next    bw.Fetcher
	limiter *HostLimiter
	delays  []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHostLimiter throttles attempts per host.
func WithHostLimiter(l *HostLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithRetryDelays sets the delays before each retry. The number of delays is
// the number of retries. Defaults to DefaultRetryDelays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// NewFetcher wraps next.
func NewFetcher(next bw.Fetcher, opts ...Option) *Fetcher {
	f := &Fetcher{next: next, delays: DefaultRetryDelays()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the page at rawURL, retrying transient failures.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*bw.Page, error) {
	host := ""
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
	}

	var lastErr error
	for attempt := 0; attempt <= len(f.delays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(f.delays[attempt-1]):
			}
		}

		if f.limiter != nil {
			if err := f.limiter.Wait(ctx, host); err != nil {
				return nil, err
			}
		}

		page, err := f.next.Fetch(ctx, rawURL)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if ctx.Err() != nil || !retryable(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

// Close closes the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

func retryable(err error) bool {
	switch bw.ErrorCode(err) {
	case bw.ENOTFOUND, bw.EINVALID:
		return false
	}
	return true
}
