package main

import (
	"context"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/dom"
	"golang.org/x/net/html"
)

// loadDocument fetches url and parses it into a document carrying the final
// URL and content type of the response.
func loadDocument(ctx context.Context, fetcher bw.Fetcher, url string) (*dom.Document, error) {
	page, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	pageURL := page.URL
	if pageURL == "" {
		pageURL = url
	}
	return dom.ParseString(page.HTML, pageURL, dom.WithContentType(page.ContentType))
}

// selectText selects the nth occurrence of text in doc.
func selectText(doc *dom.Document, text string, nth int) error {
	var sel *dom.Selection
	doc.Do(func(root *html.Node) {
		if r, ok := dom.BuildIndex(root).Find(text, nth); ok {
			sel = r.Selection()
		}
	})
	if sel == nil {
		return bw.Errorf(bw.ENOTFOUND, "text %q not found on page", text)
	}
	doc.Select(sel)
	return nil
}
