package anchor

import (
	"strings"
	"unicode"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/dom"
	"golang.org/x/net/html"
)

// Builder creates text-quote anchors from user selections.
type Builder struct {
	// ContextChars bounds the prefix and suffix windows.
	// Defaults to bw.AnchorContextChars.
	ContextChars int
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{ContextChars: bw.AnchorContextChars}
}

// Build anchors the current selection of doc. It returns nil when nothing
// is selected.
func (b *Builder) Build(doc *dom.Document) *bw.TextQuoteAnchor {
	sel := doc.Selection()
	if sel == nil {
		return nil
	}
	var a *bw.TextQuoteAnchor
	doc.Do(func(*html.Node) {
		a = b.BuildFromSelection(sel)
	})
	return a
}

// BuildFromSelection anchors sel. The caller must hold the document for the
// duration of the call. It returns nil when the selection is empty or
// unreadable. Failing to read the prefix or suffix leaves that field empty.
func (b *Builder) BuildFromSelection(sel *dom.Selection) *bw.TextQuoteAnchor {
	if sel == nil || sel.IsCollapsed() {
		return nil
	}
	raw, err := sel.Text()
	if err != nil {
		return nil
	}
	exact := bw.CleanText(raw)
	if exact == "" {
		return nil
	}

	// Whitespace trimmed off the selection belongs to the surrounding
	// context, where the resolver will see it.
	lead := raw[:len(raw)-len(strings.TrimLeftFunc(raw, unicode.IsSpace))]
	trail := raw[len(strings.TrimRightFunc(raw, unicode.IsSpace)):]

	container := commonContainer(sel.StartContainer, sel.EndContainer)

	var prefix, suffix string
	if before, err := textBefore(sel, container); err == nil {
		prefix = lastRunes(before+lead, b.contextChars())
	}
	if after, err := textAfter(sel, container); err == nil {
		suffix = firstRunes(trail+after, b.contextChars())
	}

	return &bw.TextQuoteAnchor{
		Type:         bw.AnchorTypeTextQuote,
		Exact:        exact,
		Prefix:       prefix,
		Suffix:       suffix,
		SelectorHint: SelectorHint(container),
	}
}

func (b *Builder) contextChars() int {
	if b.ContextChars <= 0 {
		return bw.AnchorContextChars
	}
	return b.ContextChars
}

// textBefore returns the text preceding the selection start: the head of the
// start text node, or everything from the container start otherwise.
func textBefore(sel *dom.Selection, container *html.Node) (string, error) {
	start := sel.StartContainer
	if start.Type == html.TextNode {
		r, err := dom.NewRange(start, 0, sel.StartOffset)
		if err != nil {
			return "", err
		}
		return r.Text(), nil
	}
	if container == nil {
		return "", bw.Errorf(bw.EINVALID, "selection has no container element")
	}
	sub := &dom.Selection{
		StartContainer: container,
		StartOffset:    0,
		EndContainer:   start,
		EndOffset:      sel.StartOffset,
	}
	return sub.Text()
}

// textAfter returns the text following the selection end: the tail of the
// end text node, or everything up to the container end otherwise.
func textAfter(sel *dom.Selection, container *html.Node) (string, error) {
	end := sel.EndContainer
	if end.Type == html.TextNode {
		r, err := dom.NewRange(end, sel.EndOffset, len(end.Data))
		if err != nil {
			return "", err
		}
		return r.Text(), nil
	}
	if container == nil {
		return "", bw.Errorf(bw.EINVALID, "selection has no container element")
	}
	sub := &dom.Selection{
		StartContainer: end,
		StartOffset:    sel.EndOffset,
		EndContainer:   container,
		EndOffset:      childCount(container),
	}
	return sub.Text()
}

// commonContainer returns the nearest element containing both a and b.
func commonContainer(a, b *html.Node) *html.Node {
	ancestors := make(map[*html.Node]bool)
	for n := a; n != nil; n = n.Parent {
		ancestors[n] = true
	}
	for n := b; n != nil; n = n.Parent {
		if ancestors[n] {
			return elementOf(n)
		}
	}
	return elementOf(a)
}

func elementOf(n *html.Node) *html.Node {
	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}

func childCount(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}
