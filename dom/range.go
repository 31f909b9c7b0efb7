package dom

import (
	"unicode/utf8"

	"github.com/fwojciec/bw"
	"golang.org/x/net/html"
)

// Range is a span of characters inside a single text node. Start and End are
// byte offsets into the node data and always fall on character boundaries.
type Range struct {
	Node  *html.Node
	Start int
	End   int
}

// NewRange returns a validated range over n.
func NewRange(n *html.Node, start, end int) (Range, error) {
	if n == nil || n.Type != html.TextNode {
		return Range{}, bw.Errorf(bw.EINVALID, "range container must be a text node")
	}
	if start < 0 || end < start || end > len(n.Data) {
		return Range{}, bw.Errorf(bw.EINVALID, "range [%d, %d) out of bounds for length %d", start, end, len(n.Data))
	}
	if !isBoundary(n.Data, start) || !isBoundary(n.Data, end) {
		return Range{}, bw.Errorf(bw.EINVALID, "range [%d, %d) splits a character", start, end)
	}
	return Range{Node: n, Start: start, End: end}, nil
}

// Text returns the characters covered by the range.
func (r Range) Text() string {
	return r.Node.Data[r.Start:r.End]
}

// Selection returns a selection spanning the range.
func (r Range) Selection() *Selection {
	return &Selection{
		StartContainer: r.Node,
		StartOffset:    r.Start,
		EndContainer:   r.Node,
		EndOffset:      r.End,
	}
}

func isBoundary(s string, i int) bool {
	return i == len(s) || utf8.RuneStart(s[i])
}
