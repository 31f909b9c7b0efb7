package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/dom"
	"golang.org/x/net/html"
)

// MetadataExtractor reads page metadata from title, link and meta tags.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata returns the metadata of the page rooted at root.
func (e *MetadataExtractor) ExtractMetadata(root *html.Node, pageURL string) bw.PageMetadata {
	doc := goquery.NewDocumentFromNode(root)

	md := bw.PageMetadata{
		URL:   pageURL,
		Title: dom.Title(root),
	}

	if href, ok := doc.Find(`link[rel~="canonical"]`).First().Attr("href"); ok {
		md.CanonicalURL = absoluteURL(pageURL, strings.TrimSpace(href))
	}

	md.Author = metaContent(doc,
		`meta[name="author"]`,
		`meta[property="article:author"]`,
	)
	md.PublishedTime = metaContent(doc,
		`meta[property="article:published_time"]`,
		`meta[itemprop="datePublished"]`,
		`meta[name="date"]`,
	)
	md.SiteName = metaContent(doc, `meta[property="og:site_name"]`)
	md.PageDescription = metaContent(doc,
		`meta[name="description"]`,
		`meta[property="og:description"]`,
	)

	return md
}

// IsPDF reports whether the page is a PDF rather than an HTML document:
// the URL mentions .pdf, the served content type is a PDF, or a
// content-type meta tag says so.
func IsPDF(root *html.Node, pageURL, contentType string) bool {
	if strings.Contains(strings.ToLower(pageURL), ".pdf") {
		return true
	}
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return true
	}
	pdf := false
	goquery.NewDocumentFromNode(root).Find("meta[http-equiv]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.EqualFold(s.AttrOr("http-equiv", ""), "content-type") {
			return true
		}
		pdf = strings.Contains(strings.ToLower(s.AttrOr("content", "")), "pdf")
		return !pdf
	})
	return pdf
}

// metaContent returns the trimmed content of the first selector that yields
// a non-empty value.
func metaContent(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if v := strings.TrimSpace(doc.Find(sel).First().AttrOr("content", "")); v != "" {
			return v
		}
	}
	return ""
}

// absoluteURL resolves href against the page URL. It returns href unchanged
// when either cannot be parsed.
func absoluteURL(pageURL, href string) string {
	if href == "" {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
