package bw

import "strings"

// ExtractionMode selects which extraction path runs.
type ExtractionMode string

// ExtractionMode constants.
const (
	ModeSelection ExtractionMode = "selection"
	ModeReader    ExtractionMode = "reader"
	ModeFull      ExtractionMode = "full"
	ModePDF       ExtractionMode = "pdf"
)

// ParseExtractionMode maps a requested mode to an ExtractionMode.
// Anything other than "selection" or "reader" is treated as a full capture.
// PDF is never requested; it is only reported as the mode used.
func ParseExtractionMode(s string) ExtractionMode {
	switch ExtractionMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSelection:
		return ModeSelection
	case ModeReader:
		return ModeReader
	default:
		return ModeFull
	}
}

// PageMetadata describes the page an extraction ran against.
type PageMetadata struct {
	URL             string `json:"url" yaml:"url"`
	Title           string `json:"title" yaml:"title"`
	CanonicalURL    string `json:"canonical_url" yaml:"canonical_url"`
	Author          string `json:"author" yaml:"author"`
	PublishedTime   string `json:"published_time" yaml:"published_time"`
	SiteName        string `json:"site_name" yaml:"site_name"`
	PageDescription string `json:"page_description" yaml:"page_description"`
}

// ExtractionMeta is PageMetadata plus facts about the extraction itself.
type ExtractionMeta struct {
	PageMetadata `yaml:",inline"`

	IsPDF               bool `json:"is_pdf" yaml:"is_pdf"`
	ExtractionCharCount int  `json:"extraction_char_count" yaml:"extraction_char_count"`
	Truncated           bool `json:"truncated" yaml:"truncated"`
}

// ExtractionResult is the payload produced by a single extraction request.
type ExtractionResult struct {
	ModeUsed      ExtractionMode   `json:"mode_used" yaml:"mode_used"`
	SelectionText *string          `json:"selection_text" yaml:"selection_text"`
	Text          string           `json:"text" yaml:"text"`
	Meta          ExtractionMeta   `json:"meta" yaml:"meta"`
	Anchor        *TextQuoteAnchor `json:"anchor,omitempty" yaml:"anchor,omitempty"`
}

// MessageTypeExtract is the message type of an extraction request.
const MessageTypeExtract = "BW_EXTRACT"

// ExtractRequest asks the content side to extract the current page.
type ExtractRequest struct {
	Type string `json:"type"`
	Mode string `json:"mode"`
}

// ExtractResponse is the reply to an ExtractRequest. On failure only OK and
// Error are set; on success the result fields are inlined next to OK.
type ExtractResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	*ExtractionResult
}
