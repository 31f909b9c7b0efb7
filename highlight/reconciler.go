// Package highlight marks stored quotes on a live page and keeps the marks in
// step with client-side navigation.
package highlight

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/anchor"
	"github.com/fwojciec/bw/dom"
	"golang.org/x/net/html"
)

// DefaultSettleDelay is how long Run waits after a navigation before
// re-resolving quotes, giving the page time to finish rendering.
const DefaultSettleDelay = 500 * time.Millisecond

// AnchorResolver locates an anchor in a tree.
type AnchorResolver interface {
	Resolve(root *html.Node, a *bw.TextQuoteAnchor) (dom.Range, bool)
}

// Reconciler derives the highlights of a page from the quotes stored for it.
type Reconciler struct {
	Quotes   bw.QuoteService
	Resolver AnchorResolver
	Registry *Registry

	// Decorate is applied to every new wrapper. Optional.
	Decorate func(el *html.Node, q *bw.Quote)

	// OnPass is called after every successful pass of Run. Optional.
	OnPass func(url string, n int)

	SettleDelay time.Duration
	Logger      *slog.Logger
}

// NewReconciler creates a Reconciler with the default resolver, an empty
// registry and the default settle delay.
func NewReconciler(quotes bw.QuoteService) *Reconciler {
	return &Reconciler{
		Quotes:      quotes,
		Resolver:    anchor.NewResolver(),
		Registry:    NewRegistry(),
		Decorate:    Decorate,
		SettleDelay: DefaultSettleDelay,
	}
}

// Reconcile tears down existing highlights, fetches the quotes for the
// document's current URL and wraps each one that resolves. It returns the
// number of highlights applied. A failed quote lookup is logged and treated
// as no quotes; quotes that do not resolve or cannot be wrapped are skipped.
// The only error returned is the context's.
func (r *Reconciler) Reconcile(ctx context.Context, doc *dom.Document) (int, error) {
	r.Teardown(doc)

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	url := doc.URL()
	quotes, err := r.Quotes.FindQuotesBySource(ctx, url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		r.logger().Warn("quote lookup failed", "url", url, "error", err)
		quotes = nil
	}
	if len(quotes) == 0 {
		return 0, nil
	}

	applied := 0
	doc.Mutate(func(root *html.Node) {
		for _, q := range quotes {
			if r.apply(root, q) {
				applied++
			}
		}
	})
	return applied, nil
}

func (r *Reconciler) apply(root *html.Node, q *bw.Quote) bool {
	if q == nil || q.Anchor.Type != bw.AnchorTypeTextQuote {
		return false
	}
	rng, ok := r.Resolver.Resolve(root, &q.Anchor)
	if !ok {
		return false
	}
	el := NewWrapper(q.ID)
	if err := dom.SurroundContents(rng, el); err != nil {
		r.logger().Debug("highlight wrap failed", "quote_id", q.ID, "error", err)
		return false
	}
	r.Registry.Upsert(q.ID, el)
	if r.Decorate != nil {
		r.Decorate(el, q)
	}
	return true
}

// Teardown removes every highlight from doc and resets the registry.
func (r *Reconciler) Teardown(doc *dom.Document) {
	doc.Mutate(func(root *html.Node) {
		r.Registry.TeardownAll(root)
	})
}

// Run reconciles doc once, then again after every URL change reported by
// watcher. Highlights are torn down as soon as a change is seen and
// reapplied once SettleDelay has passed. Changes arriving while a pass is
// pending collapse into a single follow-up pass. Run returns when ctx is
// done.
func (r *Reconciler) Run(ctx context.Context, doc *dom.Document, watcher bw.NavigationWatcher) error {
	navigated := make(chan struct{}, 1)
	watcher.OnURLChanged(func(string) {
		select {
		case navigated <- struct{}{}:
		default:
		}
	})

	r.pass(ctx, doc)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-navigated:
		}

		r.Teardown(doc)

		timer := time.NewTimer(r.settleDelay())
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		r.pass(ctx, doc)
	}
}

func (r *Reconciler) pass(ctx context.Context, doc *dom.Document) {
	n, err := r.Reconcile(ctx, doc)
	if err != nil {
		return
	}
	r.logger().Debug("highlights applied", "url", doc.URL(), "count", n)
	if r.OnPass != nil {
		r.OnPass(doc.URL(), n)
	}
}

func (r *Reconciler) settleDelay() time.Duration {
	if r.SettleDelay <= 0 {
		return DefaultSettleDelay
	}
	return r.SettleDelay
}

func (r *Reconciler) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}
