package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bw/dom"
	"golang.org/x/net/html"
)

// Scoring constants. Changing any of them changes which node is chosen as
// the main content of a page.
const (
	// MinCandidateChars is the rendered length a div or section needs to
	// become a candidate.
	MinCandidateChars = 500

	// MinScoredChars is the rendered length below which a candidate scores 0.
	MinScoredChars = 200

	ParagraphBonus     = 200
	HeadingBonus       = 50
	LinkDensityPenalty = 1500
)

// ContentScorer finds the node most likely to hold the readable content of
// a page.
type ContentScorer struct{}

// NewContentScorer creates a new ContentScorer.
func NewContentScorer() *ContentScorer {
	return &ContentScorer{}
}

// Score rates n as a main-content container. Long text, paragraphs and
// top-level headings raise the score; link-heavy text lowers it.
func (s *ContentScorer) Score(n *html.Node) float64 {
	textLen := len([]rune(dom.RenderedText(n)))
	if textLen < MinScoredChars {
		return 0
	}

	sel := goquery.NewDocumentFromNode(n).Selection
	paragraphs := sel.Find("p").Length()
	headings := sel.Find("h1, h2").Length()

	linkLen := 0
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		for _, node := range a.Nodes {
			linkLen += len([]rune(dom.RenderedText(node)))
		}
	})
	linkDensity := float64(linkLen) / float64(max(1, textLen))

	return float64(textLen) +
		float64(paragraphs*ParagraphBonus) +
		float64(headings*HeadingBonus) -
		linkDensity*LinkDensityPenalty
}

// Candidates returns the nodes under root considered as main content:
// semantic containers first, then long divs and sections, each group in
// document order and without duplicates.
func (s *ContentScorer) Candidates(root *html.Node) []*html.Node {
	doc := goquery.NewDocumentFromNode(root)
	seen := make(map[*html.Node]bool)
	var candidates []*html.Node

	add := func(n *html.Node) {
		if seen[n] {
			return
		}
		seen[n] = true
		candidates = append(candidates, n)
	}

	for _, n := range doc.Find(`article, main, [role="main"]`).Nodes {
		add(n)
	}
	for _, n := range doc.Find("div, section").Nodes {
		if len([]rune(dom.RenderedText(n))) >= MinCandidateChars {
			add(n)
		}
	}
	return candidates
}

// Best returns the highest scoring candidate under root. Ties go to the
// candidate found first. It returns nil when no candidate scores above 0.
func (s *ContentScorer) Best(root *html.Node) *html.Node {
	var best *html.Node
	var bestScore float64
	for _, n := range s.Candidates(root) {
		if score := s.Score(n); score > bestScore {
			best, bestScore = n, score
		}
	}
	return best
}

// Text returns the rendered text of the best candidate under root, or the
// rendered text of root when there is none.
func (s *ContentScorer) Text(root *html.Node) string {
	if best := s.Best(root); best != nil {
		return dom.RenderedText(best)
	}
	return dom.RenderedText(root)
}
