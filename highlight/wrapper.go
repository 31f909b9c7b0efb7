package highlight

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Wrapper markup.
const (
	WrapperClass   = "bw-highlight"
	AttrQuoteID    = "data-quote-id"
	AttrClaimCount = "data-claim-count"
	AttrConcepts   = "data-concepts"
)

// NewWrapper returns a detached highlight element for the quote id.
func NewWrapper(quoteID string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Mark,
		Data:     "mark",
		Attr: []html.Attribute{
			{Key: "class", Val: WrapperClass},
			{Key: AttrQuoteID, Val: quoteID},
		},
	}
}

// IsWrapper reports whether n is a highlight element.
func IsWrapper(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "mark" && dom.HasClass(n, WrapperClass)
}

// Decorate attaches the quote's claim count and concepts to its wrapper so
// the page's hover and click handlers can read them.
func Decorate(el *html.Node, q *bw.Quote) {
	dom.SetAttr(el, AttrClaimCount, strconv.Itoa(q.ClaimCount))
	if len(q.AttachedConcepts) > 0 {
		dom.SetAttr(el, AttrConcepts, strings.Join(q.AttachedConcepts, ","))
	}
	title := fmt.Sprintf("%d claims", q.ClaimCount)
	if q.ClaimCount == 1 {
		title = "1 claim"
	}
	if len(q.AttachedConcepts) > 0 {
		title += ": " + strings.Join(q.AttachedConcepts, ", ")
	}
	dom.SetAttr(el, "title", title)
}
