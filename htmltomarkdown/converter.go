// Package htmltomarkdown renders extracted page content as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/dom"
	"golang.org/x/net/html"
)

// Converter turns HTML subtrees into CommonMark with table support.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders the subtree rooted at n. Relative links are resolved
// against pageURL when it is set.
//
// The conversion works on a copy, so n may belong to a live document.
func (c *Converter) Convert(n *html.Node, pageURL string) (string, error) {
	if n == nil {
		return "", bw.Errorf(bw.EINVALID, "node required")
	}
	if strings.TrimSpace(dom.TextContent(n)) == "" {
		return "", bw.Errorf(bw.EINVALID, "no text to convert")
	}

	var out []byte
	var err error
	if pageURL != "" {
		out, err = c.conv.ConvertNode(dom.CloneTree(n), converter.WithDomain(pageURL))
	} else {
		out, err = c.conv.ConvertNode(dom.CloneTree(n))
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
