// Package trafilatura fills metadata gaps using go-trafilatura, whose date
// extraction (go-htmldate) looks well beyond meta tags.
package trafilatura

import (
	"bytes"
	"net/url"

	"github.com/fwojciec/bw"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// MetadataEnricher fills the published time, author, site name and
// description when earlier extractors left them empty.
type MetadataEnricher struct{}

// NewMetadataEnricher creates a new MetadataEnricher.
func NewMetadataEnricher() *MetadataEnricher {
	return &MetadataEnricher{}
}

// EnrichMetadata runs trafilatura over a rendered copy of root and copies its
// metadata into the empty fields of md.
func (e *MetadataEnricher) EnrichMetadata(root *html.Node, md *bw.PageMetadata) error {
	if root == nil || md == nil {
		return bw.Errorf(bw.EINVALID, "trafilatura: nil document or metadata")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return bw.Errorf(bw.EINTERNAL, "trafilatura: render: %v", err)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(md.URL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(&buf, opts)
	if err != nil {
		return bw.Errorf(bw.EINTERNAL, "trafilatura: %v", err)
	}

	meta := result.Metadata
	if !meta.Date.IsZero() {
		fill(&md.PublishedTime, meta.Date.Format("2006-01-02"))
	}
	fill(&md.Title, meta.Title)
	fill(&md.Author, meta.Author)
	fill(&md.SiteName, meta.Sitename)
	fill(&md.PageDescription, meta.Description)
	return nil
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = bw.CleanText(v)
	}
}
