// Package rod fetches pages through a headless Chrome browser so that
// client-rendered content is present in the returned HTML.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/bw"
)

// DefaultFetchTimeout bounds a single page load.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements bw.Fetcher at compile time.
var _ bw.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
	closed  atomic.Bool
}

// Option configures a Fetcher.
type Option func(*fetcherOptions)

type fetcherOptions struct {
	timeout  time.Duration
	maxPages int64
}

// WithFetchTimeout sets the timeout for a single page load.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(o *fetcherOptions) {
		o.timeout = d
	}
}

// WithBrowserRecycling sets how many pages the browser serves before it is
// restarted. Defaults to DefaultMaxPages.
func WithBrowserRecycling(maxPages int64) Option {
	return func(o *fetcherOptions) {
		o.maxPages = maxPages
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	o := &fetcherOptions{timeout: DefaultFetchTimeout, maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(o)
	}

	manager, err := NewBrowserManager(WithMaxPages(o.maxPages))
	if err != nil {
		return nil, err
	}
	return &Fetcher{manager: manager, timeout: o.timeout}, nil
}

// Fetch navigates to the URL and returns the rendered page together with the
// final URL and the content type the browser settled on.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*bw.Page, error) {
	if f.closed.Load() {
		return nil, bw.Errorf(bw.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, release, err := f.manager.Page(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	result := &bw.Page{URL: url, HTML: html}
	if info, err := page.Info(); err == nil && info.URL != "" {
		result.URL = info.URL
	}
	if ct, err := page.Eval(`() => document.contentType`); err == nil {
		result.ContentType = ct.Value.Str()
	}
	return result, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
