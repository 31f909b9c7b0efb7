package dom

import (
	"github.com/fwojciec/bw"
	"golang.org/x/net/html"
)

// SplitText breaks text node n at offset, keeping the head in n and returning
// a new text node holding the tail. The new node is inserted after n when n
// has a parent.
func SplitText(n *html.Node, offset int) (*html.Node, error) {
	if _, err := NewRange(n, offset, offset); err != nil {
		return nil, err
	}
	tail := &html.Node{Type: html.TextNode, Data: n.Data[offset:]}
	n.Data = n.Data[:offset]
	if n.Parent != nil {
		n.Parent.InsertBefore(tail, n.NextSibling)
	}
	return tail, nil
}

// SurroundContents moves the text covered by r into wrapper and puts wrapper
// where that text was. wrapper must be a detached element.
func SurroundContents(r Range, wrapper *html.Node) error {
	if _, err := NewRange(r.Node, r.Start, r.End); err != nil {
		return err
	}
	if r.Node.Parent == nil {
		return bw.Errorf(bw.EINVALID, "range is not attached to a parent")
	}
	if wrapper == nil || wrapper.Type != html.ElementNode {
		return bw.Errorf(bw.EINVALID, "wrapper must be an element")
	}
	if wrapper.Parent != nil || wrapper.PrevSibling != nil || wrapper.NextSibling != nil {
		return bw.Errorf(bw.EINVALID, "wrapper must be detached")
	}

	if r.End < len(r.Node.Data) {
		if _, err := SplitText(r.Node, r.End); err != nil {
			return err
		}
	}
	mid := r.Node
	if r.Start > 0 {
		var err error
		if mid, err = SplitText(r.Node, r.Start); err != nil {
			return err
		}
	}

	parent := mid.Parent
	parent.InsertBefore(wrapper, mid)
	parent.RemoveChild(mid)
	wrapper.AppendChild(mid)
	return nil
}

// Unwrap replaces el with its children and returns the former parent.
// A detached el is left untouched and nil is returned.
func Unwrap(el *html.Node) *html.Node {
	parent := el.Parent
	if parent == nil {
		return nil
	}
	for c := el.FirstChild; c != nil; c = el.FirstChild {
		el.RemoveChild(c)
		parent.InsertBefore(c, el)
	}
	parent.RemoveChild(el)
	return parent
}

// Normalize merges adjacent text nodes under n and drops empty ones.
func Normalize(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch {
		case c.Type == html.TextNode && c.Data == "":
			n.RemoveChild(c)
		case c.Type == html.TextNode:
			for next != nil && next.Type == html.TextNode {
				c.Data += next.Data
				after := next.NextSibling
				n.RemoveChild(next)
				next = after
			}
			if c.Data == "" {
				n.RemoveChild(c)
			}
		default:
			Normalize(c)
		}
		c = next
	}
}
