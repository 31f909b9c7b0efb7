// Package extract turns a live document into an extraction payload under one
// of the capture modes. It coordinates noise filtering, content scoring,
// metadata lookup and anchoring of the current selection.
package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/dom"
	"golang.org/x/net/html"
)

// NoiseFilter strips boilerplate from a detached tree in place.
type NoiseFilter interface {
	Filter(root *html.Node)
}

// ContentScorer returns the readable text of the best content node.
type ContentScorer interface {
	Text(root *html.Node) string
}

// MetadataExtractor reads page metadata from a tree.
type MetadataExtractor interface {
	ExtractMetadata(root *html.Node, pageURL string) bw.PageMetadata
}

// MetadataEnricher fills metadata fields an earlier extractor left empty.
// It must not modify root.
type MetadataEnricher interface {
	EnrichMetadata(root *html.Node, md *bw.PageMetadata) error
}

// AnchorBuilder anchors a selection. It returns nil for empty selections.
type AnchorBuilder interface {
	BuildFromSelection(sel *dom.Selection) *bw.TextQuoteAnchor
}

// Orchestrator runs extraction requests against a document.
type Orchestrator struct {
	Filter    NoiseFilter
	Scorer    ContentScorer
	Metadata  MetadataExtractor
	Enrichers []MetadataEnricher
	Anchors   AnchorBuilder

	// DetectPDF reports whether the page is a PDF viewer rather than HTML.
	DetectPDF func(root *html.Node, pageURL, contentType string) bool

	// MaxChars bounds the extracted text. Defaults to bw.MaxExtractionChars.
	MaxChars int

	// Logger receives enrichment failures. Optional.
	Logger *slog.Logger
}

// Extract runs a single extraction pass over doc.
func (o *Orchestrator) Extract(ctx context.Context, doc *dom.Document, mode bw.ExtractionMode) (*bw.ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, bw.Errorf(bw.EINVALID, "document required")
	}

	pageURL := doc.URL()
	contentType := doc.ContentType()
	sel := doc.Selection()

	var result *bw.ExtractionResult
	doc.Do(func(root *html.Node) {
		result = o.extract(root, pageURL, contentType, sel, mode)
	})
	return result, nil
}

func (o *Orchestrator) extract(root *html.Node, pageURL, contentType string, sel *dom.Selection, mode bw.ExtractionMode) *bw.ExtractionResult {
	md := o.Metadata.ExtractMetadata(root, pageURL)
	for _, e := range o.Enrichers {
		if err := e.EnrichMetadata(root, &md); err != nil {
			o.logger().Debug("metadata enrichment failed", "url", pageURL, "error", err)
		}
	}

	selection := o.selectionText(sel)

	result := &bw.ExtractionResult{
		Meta: bw.ExtractionMeta{PageMetadata: md},
	}
	if selection != "" {
		result.SelectionText = &selection
	}

	isPDF := o.DetectPDF != nil && o.DetectPDF(root, pageURL, contentType)
	result.Meta.IsPDF = isPDF

	var text string
	switch {
	case isPDF && mode != bw.ModeSelection:
		result.ModeUsed = bw.ModePDF
		text = selection
	case mode == bw.ModeSelection:
		result.ModeUsed = bw.ModeSelection
		text = selection
		if sel != nil && o.Anchors != nil {
			result.Anchor = o.Anchors.BuildFromSelection(sel)
		}
	case mode == bw.ModeReader:
		result.ModeUsed = bw.ModeReader
		clone := o.filtered(root)
		text = bw.CleanText(md.Title + "\n\n" + o.Scorer.Text(clone))
	default:
		result.ModeUsed = bw.ModeFull
		clone := o.filtered(root)
		text = bw.CleanText(md.Title + "\n\n" + dom.RenderedText(dom.Body(clone)))
	}

	text, truncated := bw.ClampText(text, o.maxChars())
	result.Text = text
	result.Meta.Truncated = truncated
	result.Meta.ExtractionCharCount = bw.CharCount(text)
	return result
}

// Handle answers an extraction message. It always returns a response:
// unknown message types, extraction errors and panics become a response
// with OK unset and Error describing the failure.
func (o *Orchestrator) Handle(ctx context.Context, doc *dom.Document, req bw.ExtractRequest) (resp *bw.ExtractResponse) {
	defer func() {
		if r := recover(); r != nil {
			o.logger().Error("extraction panicked", "panic", r)
			resp = &bw.ExtractResponse{Error: fmt.Sprintf("extraction failed: %v", r)}
		}
	}()

	if req.Type != bw.MessageTypeExtract {
		return &bw.ExtractResponse{Error: fmt.Sprintf("unsupported message type %q", req.Type)}
	}

	result, err := o.Extract(ctx, doc, bw.ParseExtractionMode(req.Mode))
	if err != nil {
		return &bw.ExtractResponse{Error: err.Error()}
	}
	return &bw.ExtractResponse{OK: true, ExtractionResult: result}
}

// selectionText returns the cleaned text of sel. A selection that no longer
// fits the tree reads as empty.
func (o *Orchestrator) selectionText(sel *dom.Selection) string {
	if sel == nil || sel.IsCollapsed() {
		return ""
	}
	raw, err := sel.Text()
	if err != nil {
		o.logger().Debug("unreadable selection", "error", err)
		return ""
	}
	return bw.CleanText(raw)
}

// filtered returns a noise-filtered copy of root. The live tree is never
// modified.
func (o *Orchestrator) filtered(root *html.Node) *html.Node {
	clone := dom.CloneTree(root)
	o.Filter.Filter(clone)
	return clone
}

func (o *Orchestrator) maxChars() int {
	if o.MaxChars <= 0 {
		return bw.MaxExtractionChars
	}
	return o.MaxChars
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
