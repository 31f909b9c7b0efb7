// Package goquery implements the page analysis steps of extraction with
// goquery selectors: boilerplate removal, main-content scoring and metadata
// lookup.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// noiseSelectors lists structural, ad and consent elements that never carry
// the readable content of a page.
var noiseSelectors = []string{
	"script", "style", "noscript", "template", "iframe",
	"nav", "header", "footer", "aside",
	`form[role="search"]`,
	`[role="navigation"]`, `[role="banner"]`, `[role="contentinfo"]`,
	`[aria-hidden="true"]`,
	".ad", ".ads", ".advert", ".advertisement",
	`[class^="ad-"]`, `[class*=" ad-"]`, `[id^="ad-"]`,
	`[class*="advert"]`, `[id*="advert"]`, `[class*="sponsor"]`,
	`[class*="cookie"]`, `[id*="cookie"]`,
	`[class*="consent"]`, `[id*="consent"]`,
	`[class*="newsletter"]`, `[id*="newsletter"]`,
	`[class*="paywall"]`, `[id*="paywall"]`,
	`[class*="share-"]`, `[class*="related-"]`,
}

// NoiseFilter removes boilerplate subtrees from a detached copy of a page.
type NoiseFilter struct {
	selector string
}

// NewNoiseFilter creates a NoiseFilter using the default denylist.
func NewNoiseFilter() *NoiseFilter {
	return &NoiseFilter{selector: strings.Join(noiseSelectors, ", ")}
}

// Filter removes every element under root that matches the denylist.
// root itself is never removed. root must not be part of a live document.
func (f *NoiseFilter) Filter(root *html.Node) {
	goquery.NewDocumentFromNode(root).Find(f.selector).Remove()
}
