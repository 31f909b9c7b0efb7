package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// TextNode is one entry of a TextIndex.
type TextNode struct {
	ID   int
	Node *html.Node
	Text string
}

// TextIndex lists the text nodes under a root in document order.
// It is a snapshot: rebuild it after the tree changes.
type TextIndex []TextNode

// BuildIndex returns the text nodes under root in document order.
func BuildIndex(root *html.Node) TextIndex {
	var ix TextIndex
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			ix = append(ix, TextNode{ID: len(ix), Node: n, Text: n.Data})
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return ix
}

// Find returns the range of the nth (zero-based) occurrence of text inside a
// single text node, counting occurrences across the index in document order.
func (ix TextIndex) Find(text string, nth int) (Range, bool) {
	if text == "" || nth < 0 {
		return Range{}, false
	}
	for _, tn := range ix {
		from := 0
		for {
			i := strings.Index(tn.Text[from:], text)
			if i < 0 {
				break
			}
			start := from + i
			if nth == 0 {
				return Range{Node: tn.Node, Start: start, End: start + len(text)}, true
			}
			nth--
			from = start + len(text)
		}
	}
	return Range{}, false
}
