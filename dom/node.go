package dom

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// FindElement returns the first element named tag under n in document order.
func FindElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node under n, n included, for which match returns true.
func FindAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			nodes = append(nodes, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return nodes
}

// Attr returns the value of the named attribute, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets the named attribute, replacing an existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// HasClass reports whether n carries the class token cls.
func HasClass(n *html.Node, cls string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == cls {
			return true
		}
	}
	return false
}

// ContainingElement returns n when it is an element, otherwise its parent.
func ContainingElement(n *html.Node) *html.Node {
	if n == nil || n.Type == html.ElementNode {
		return n
	}
	return n.Parent
}

// IsAttached reports whether n is still connected to a document node.
func IsAttached(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n.Type == html.DocumentNode {
			return true
		}
	}
	return false
}

// CloneTree returns a detached deep copy of n.
func CloneTree(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(CloneTree(child))
	}
	return c
}

// TextContent returns the concatenated data of every text node under n.
func TextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// Elements that never contribute rendered text.
var hiddenTags = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// Elements separated from their neighbours by a blank line.
var paragraphTags = map[string]bool{
	"p":  true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true,
	"pre":        true,
}

// Elements separated from their neighbours by a line break.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "dd": true,
	"details": true, "dialog": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "header": true, "hr": true, "li": true, "main": true,
	"nav": true, "ol": true, "section": true, "summary": true,
	"table": true, "tr": true, "ul": true, "caption": true,
}

var (
	spaceRunRe     = regexp.MustCompile(`[ \t\n\r\f]+`)
	multiSpaceRe   = regexp.MustCompile(` {2,}`)
	edgeSpaceRe    = regexp.MustCompile(` *\n *`)
	blankLineRunRe = regexp.MustCompile(`\n{3,}`)
)

// RenderedText approximates the innerText of n: hidden elements are skipped,
// whitespace in normal flow collapses, block elements start new lines and
// paragraphs and headings are separated by a blank line.
func RenderedText(n *html.Node) string {
	var r textRenderer
	r.render(n, false)
	s := multiSpaceRe.ReplaceAllString(r.b.String(), " ")
	s = edgeSpaceRe.ReplaceAllString(s, "\n")
	s = blankLineRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// textRenderer accumulates rendered text. Line breaks requested by block
// boundaries are deferred so that adjacent boundaries collapse into one.
type textRenderer struct {
	b       strings.Builder
	pending int
}

func (r *textRenderer) lineBreak(n int) {
	if n > r.pending {
		r.pending = n
	}
}

func (r *textRenderer) write(s string) {
	if s == "" {
		return
	}
	if strings.TrimSpace(s) == "" && (r.pending > 0 || r.b.Len() == 0) {
		return
	}
	if r.pending > 0 && r.b.Len() > 0 {
		r.b.WriteString(strings.Repeat("\n", r.pending))
	}
	r.pending = 0
	r.b.WriteString(s)
}

func (r *textRenderer) render(n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		if pre {
			r.write(n.Data)
		} else {
			r.write(spaceRunRe.ReplaceAllString(n.Data, " "))
		}
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		if hiddenTags[n.Data] {
			return
		}
		switch {
		case n.Data == "br":
			if r.b.Len() > 0 {
				r.b.WriteString(strings.Repeat("\n", r.pending))
			}
			r.pending = 0
			r.b.WriteString("\n")
			return
		case n.Data == "td" || n.Data == "th":
			defer r.write(" ")
		case paragraphTags[n.Data]:
			r.lineBreak(2)
			defer r.lineBreak(2)
		case blockTags[n.Data]:
			r.lineBreak(1)
			defer r.lineBreak(1)
		}
		pre = pre || n.Data == "pre" || n.Data == "textarea"
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.render(c, pre)
	}
}
