// Package readability fills metadata gaps using go-readability's article
// heuristics (JSON-LD, bylines, excerpts).
package readability

import (
	"bytes"
	"net/url"

	"github.com/fwojciec/bw"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// MetadataEnricher fills author, site name, description and published time
// when the page's meta tags left them empty.
type MetadataEnricher struct{}

// NewMetadataEnricher creates a new MetadataEnricher.
func NewMetadataEnricher() *MetadataEnricher {
	return &MetadataEnricher{}
}

// EnrichMetadata parses a rendered copy of root and copies readability's
// findings into the empty fields of md. Populated fields are never replaced.
func (e *MetadataEnricher) EnrichMetadata(root *html.Node, md *bw.PageMetadata) error {
	if root == nil || md == nil {
		return bw.Errorf(bw.EINVALID, "readability: nil document or metadata")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return bw.Errorf(bw.EINTERNAL, "readability: render: %v", err)
	}

	// Unparseable page URLs only cost relative link resolution.
	pageURL, _ := url.Parse(md.URL)

	article, err := readability.FromReader(&buf, pageURL)
	if err != nil {
		return bw.Errorf(bw.EINTERNAL, "readability: %v", err)
	}

	fill(&md.Title, article.Title)
	fill(&md.Author, article.Byline)
	fill(&md.SiteName, article.SiteName)
	fill(&md.PageDescription, article.Excerpt)
	if article.PublishedTime != nil && !article.PublishedTime.IsZero() {
		fill(&md.PublishedTime, article.PublishedTime.Format("2006-01-02T15:04:05Z07:00"))
	}
	return nil
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = bw.CleanText(v)
	}
}
