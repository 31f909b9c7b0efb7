package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/dom"
	"github.com/fwojciec/bw/highlight"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

const defaultWatchInterval = 30 * time.Second

// Run executes the highlight command.
func (c *HighlightCmd) Run(deps *Dependencies) error {
	doc, err := loadDocument(deps.Ctx, deps.Fetcher, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bw.ErrorMessage(err))
		return err
	}

	r := highlight.NewReconciler(deps.Quotes)
	r.Logger = deps.Logger
	if c.Watch {
		return c.watch(deps, doc, r)
	}

	n, err := r.Reconcile(deps.Ctx, doc)
	if err != nil {
		return err
	}

	if c.HTML {
		return doc.Render(deps.Stdout)
	}

	if n == 0 {
		fmt.Fprintf(deps.Stdout, "No stored quotes found on %s\n", doc.URL())
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Highlighted %d quotes on %s:\n", n, doc.URL())
	for _, id := range r.Registry.IDs() {
		fmt.Fprintf(deps.Stdout, "  %s\n", id)
	}
	return nil
}

// watch re-fetches the page every interval, swaps in the new tree when the
// fetch lands on a different URL, and re-highlights after every swap until
// the context is done.
func (c *HighlightCmd) watch(deps *Dependencies, doc *dom.Document, r *highlight.Reconciler) error {
	interval := c.Interval
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	if interval/2 < r.SettleDelay {
		r.SettleDelay = interval / 2
	}
	r.OnPass = func(url string, n int) {
		fmt.Fprintf(deps.Stdout, "Highlighted %d quotes on %s\n", n, url)
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w := highlight.NewPollWatcher(doc.URL, interval)
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		refresh(ctx, deps.Fetcher, doc, c.URL, interval, logger)
		return nil
	})
	g.Go(func() error {
		w.Run(ctx)
		return nil
	})
	g.Go(func() error {
		return r.Run(ctx, doc, w)
	})
	return g.Wait()
}

// refresh fetches url every interval and navigates doc to the fetched page
// whenever its final URL differs from the document's.
func refresh(ctx context.Context, fetcher bw.Fetcher, doc *dom.Document, url string, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		page, err := fetcher.Fetch(ctx, url)
		if err != nil {
			if ctx.Err() == nil {
				logger.Warn("refetch failed", "url", url, "error", bw.ErrorMessage(err))
			}
			continue
		}
		if page.URL == "" || page.URL == doc.URL() {
			continue
		}
		fresh, err := html.Parse(strings.NewReader(page.HTML))
		if err != nil {
			logger.Warn("refetched page unparsable", "url", page.URL, "error", err)
			continue
		}
		doc.Navigate(page.URL, func(root *html.Node) {
			replaceChildren(root, fresh)
		})
	}
}

// replaceChildren moves every child of src under dst, dropping dst's own.
func replaceChildren(dst, src *html.Node) {
	for c := dst.FirstChild; c != nil; {
		next := c.NextSibling
		dst.RemoveChild(c)
		c = next
	}
	for c := src.FirstChild; c != nil; {
		next := c.NextSibling
		src.RemoveChild(c)
		dst.AppendChild(c)
		c = next
	}
}
