package dom

import (
	"strings"

	"github.com/fwojciec/bw"
	"golang.org/x/net/html"
)

// Selection is a user selection expressed as two boundary points. A boundary
// in a text node counts bytes into its data; a boundary in any other node
// counts child nodes.
type Selection struct {
	StartContainer *html.Node
	StartOffset    int
	EndContainer   *html.Node
	EndOffset      int
}

// IsCollapsed reports whether both boundary points are the same.
func (s *Selection) IsCollapsed() bool {
	return s.StartContainer == s.EndContainer && s.StartOffset == s.EndOffset
}

// Text returns the text covered by the selection.
func (s *Selection) Text() (string, error) {
	if s.StartContainer == nil || s.EndContainer == nil {
		return "", bw.Errorf(bw.EINVALID, "selection has no container")
	}
	if s.StartContainer == s.EndContainer && s.StartContainer.Type == html.TextNode {
		r, err := NewRange(s.StartContainer, s.StartOffset, s.EndOffset)
		if err != nil {
			return "", err
		}
		return r.Text(), nil
	}

	root := topmost(s.StartContainer)
	if topmost(s.EndContainer) != root {
		return "", bw.Errorf(bw.EINVALID, "selection boundaries are in different trees")
	}
	pos := newPositions(root)

	si, so, err := pos.resolve(s.StartContainer, s.StartOffset)
	if err != nil {
		return "", err
	}
	ei, eo, err := pos.resolve(s.EndContainer, s.EndOffset)
	if err != nil {
		return "", err
	}
	if si > ei || (si == ei && so > eo) {
		return "", bw.Errorf(bw.EINVALID, "selection ends before it starts")
	}

	texts := pos.texts
	if si == ei {
		if si == len(texts) {
			return "", nil
		}
		return texts[si].Data[so:eo], nil
	}
	var b strings.Builder
	b.WriteString(texts[si].Data[so:])
	for i := si + 1; i < ei; i++ {
		b.WriteString(texts[i].Data)
	}
	if ei < len(texts) {
		b.WriteString(texts[ei].Data[:eo])
	}
	return b.String(), nil
}

func topmost(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// positions maps boundary points onto (text node index, byte offset) pairs.
type positions struct {
	order map[*html.Node]int
	last  map[*html.Node]int
	texts []*html.Node
	// textOrder[i] is the document order of texts[i].
	textOrder []int
}

func newPositions(root *html.Node) *positions {
	p := &positions{
		order: make(map[*html.Node]int),
		last:  make(map[*html.Node]int),
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		p.order[n] = len(p.order)
		if n.Type == html.TextNode {
			p.texts = append(p.texts, n)
			p.textOrder = append(p.textOrder, p.order[n])
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		p.last[n] = len(p.order) - 1
	}
	walk(root)
	return p
}

// resolve converts a boundary point into the index of the first text node at
// or after it and a byte offset into that node.
func (p *positions) resolve(container *html.Node, offset int) (int, int, error) {
	if container.Type == html.TextNode {
		if _, err := NewRange(container, offset, offset); err != nil {
			return 0, 0, err
		}
		for i, t := range p.texts {
			if t == container {
				return i, offset, nil
			}
		}
		return 0, 0, bw.Errorf(bw.EINVALID, "selection container not found")
	}

	if offset < 0 {
		return 0, 0, bw.Errorf(bw.EINVALID, "negative selection offset")
	}
	child := container.FirstChild
	for i := 0; i < offset; i++ {
		if child == nil {
			return 0, 0, bw.Errorf(bw.EINVALID, "selection offset %d exceeds child count", offset)
		}
		child = child.NextSibling
	}
	var at int
	if child != nil {
		at = p.order[child]
	} else {
		at = p.last[container] + 1
	}
	for i, o := range p.textOrder {
		if o >= at {
			return i, 0, nil
		}
	}
	return len(p.texts), 0, nil
}
