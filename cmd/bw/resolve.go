package main

import (
	"fmt"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/anchor"
	"github.com/fwojciec/bw/dom"
	"golang.org/x/net/html"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	a := &bw.TextQuoteAnchor{
		Type:   bw.AnchorTypeTextQuote,
		Exact:  c.Exact,
		Prefix: c.Prefix,
		Suffix: c.Suffix,
	}
	if err := a.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bw.ErrorMessage(err))
		return err
	}

	doc, err := loadDocument(deps.Ctx, deps.Fetcher, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bw.ErrorMessage(err))
		return err
	}

	var found bool
	var hint, surrounding string
	doc.Do(func(root *html.Node) {
		var r dom.Range
		r, found = anchor.NewResolver().Resolve(root, a)
		if !found {
			return
		}
		hint = anchor.SelectorHint(dom.ContainingElement(r.Node))
		surrounding = r.Node.Data
	})

	if !found {
		fmt.Fprintf(deps.Stderr, "error: anchor %q not found on %s\n", c.Exact, doc.URL())
		return bw.Errorf(bw.ENOTFOUND, "anchor %q not found", c.Exact)
	}

	fmt.Fprintf(deps.Stdout, "Found %q in %s\n", c.Exact, hint)
	fmt.Fprintf(deps.Stdout, "  %s\n", bw.CleanText(surrounding))
	return nil
}
