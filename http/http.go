// Package http implements the backend API clients and a plain HTTP page
// fetcher for sites that do not need JavaScript rendering.
package http

import (
	"net/http"
	"time"

	"github.com/fwojciec/bw"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// options holds settings shared by Client and Fetcher.
type options struct {
	timeout time.Duration
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Client or a Fetcher.
type Option func(*options)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified. Ignored when
// WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithLimiter throttles outgoing requests. Each request waits for a token
// before it is sent.
func WithLimiter(l *rate.Limiter) Option {
	return func(o *options) {
		o.limiter = l
	}
}

func newOptions(opts []Option) *options {
	o := &options{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = &http.Client{Timeout: o.timeout}
	}
	return o
}

// statusError maps a non-2xx response status to an application error.
func statusError(status int, target string) error {
	switch {
	case status == http.StatusNotFound:
		return bw.Errorf(bw.ENOTFOUND, "HTTP %d for %s", status, target)
	case status >= 400 && status < 500:
		return bw.Errorf(bw.EINVALID, "HTTP %d for %s", status, target)
	default:
		return bw.Errorf(bw.EUNAVAILABLE, "HTTP %d for %s", status, target)
	}
}
