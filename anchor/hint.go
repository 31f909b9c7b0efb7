package anchor

import (
	"fmt"
	"strings"

	"github.com/fwojciec/bw/dom"
	"golang.org/x/net/html"
)

// maxHintClasses caps the class tokens included in a selector hint.
const maxHintClasses = 3

// SelectorHint returns a CSS selector that loosely locates n. It prefers the
// element id, then the tag with up to three class tokens, then the tag with
// its position among same-tag siblings, then the bare tag. The hint is
// advisory; resolution never depends on it.
func SelectorHint(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	if id := strings.TrimSpace(dom.Attr(n, "id")); id != "" {
		return "#" + id
	}
	tag := strings.ToLower(n.Data)
	if classes := strings.Fields(dom.Attr(n, "class")); len(classes) > 0 {
		if len(classes) > maxHintClasses {
			classes = classes[:maxHintClasses]
		}
		return tag + "." + strings.Join(classes, ".")
	}
	if n.Parent != nil {
		idx := 1
		for s := n.PrevSibling; s != nil; s = s.PrevSibling {
			if s.Type == html.ElementNode && s.Data == n.Data {
				idx++
			}
		}
		return fmt.Sprintf("%s:nth-of-type(%d)", tag, idx)
	}
	return tag
}
