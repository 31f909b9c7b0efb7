package bw

// AnchorTypeTextQuote is the only anchor type the resolver understands.
const AnchorTypeTextQuote = "text_quote"

// AnchorContextChars is the maximum length of the prefix and suffix windows.
const AnchorContextChars = 64

// TextQuoteAnchor locates a text fragment by its exact text and the text
// surrounding it. The JSON shape is the persisted representation and must
// stay stable. Prefix, suffix and selector_hint are always emitted, as empty
// strings when absent, and a null value decodes as an empty string.
type TextQuoteAnchor struct {
	Type         string `json:"type" yaml:"type"`
	Exact        string `json:"exact" yaml:"exact"`
	Prefix       string `json:"prefix" yaml:"prefix"`
	Suffix       string `json:"suffix" yaml:"suffix"`
	SelectorHint string `json:"selector_hint" yaml:"selector_hint"`
}

// Validate returns an error if the anchor cannot be resolved.
func (a *TextQuoteAnchor) Validate() error {
	if a.Type != AnchorTypeTextQuote {
		return Errorf(EINVALID, "unsupported anchor type %q", a.Type)
	}
	if a.Exact == "" {
		return Errorf(EINVALID, "anchor exact text required")
	}
	return nil
}
