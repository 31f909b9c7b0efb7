package anchor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/dom"
	"golang.org/x/net/html"
)

// Resolver locates text-quote anchors in a document.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

type candidate struct {
	node       *html.Node
	start, end int
}

// Resolve returns the range of the first occurrence of a.Exact, in document
// order, whose surroundings agree with the anchor's prefix and suffix. Only
// occurrences inside a single text node are considered. Every whitespace run
// in the anchor matches any whitespace run in the page, so text cleaned when
// the anchor was built still finds indented or nbsp-separated source text.
// The returned range covers the page's own characters. The context check
// compares as many characters as the text node offers, so a match at the
// edge of a node is accepted on a shorter context than the anchor stores.
func (r *Resolver) Resolve(root *html.Node, a *bw.TextQuoteAnchor) (dom.Range, bool) {
	if root == nil || a == nil || a.Validate() != nil {
		return dom.Range{}, false
	}
	exact, _ := foldSpace(a.Exact)
	prefix, _ := foldSpace(a.Prefix)
	suffix, _ := foldSpace(a.Suffix)

	for _, c := range findCandidates(dom.BuildIndex(root), exact) {
		text := c.node.Data
		if prefix != "" {
			if before, _ := foldSpace(text[:c.start]); !tailsAgree(before, prefix) {
				continue
			}
		}
		if suffix != "" {
			if after, _ := foldSpace(text[c.end:]); !headsAgree(after, suffix) {
				continue
			}
		}
		rng, err := dom.NewRange(c.node, c.start, c.end)
		if err != nil {
			continue
		}
		return rng, true
	}
	return dom.Range{}, false
}

// findCandidates returns every occurrence of the folded text exact,
// overlapping ones included, in document order, as byte spans of the raw
// node text.
func findCandidates(ix dom.TextIndex, exact string) []candidate {
	var out []candidate
	for _, tn := range ix {
		folded, offsets := foldSpace(tn.Text)
		from := 0
		for from < len(folded) {
			i := strings.Index(folded[from:], exact)
			if i < 0 {
				break
			}
			start := from + i
			out = append(out, candidate{
				node:  tn.Node,
				start: offsets[start],
				end:   offsets[start+len(exact)],
			})
			_, size := utf8.DecodeRuneInString(folded[start:])
			from = start + size
		}
	}
	return out
}

// foldSpace replaces every whitespace run in s, nbsp included, with a single
// space. offsets maps each byte of the folded string to its position in s;
// offsets[len(folded)] is len(s). A folded space maps to the start of its run
// and the byte after it to the end of the run.
func foldSpace(s string) (folded string, offsets []int) {
	var b strings.Builder
	b.Grow(len(s))
	offsets = make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			b.WriteString(s[i : i+size])
			for k := 0; k < size; k++ {
				offsets = append(offsets, i+k)
			}
			i += size
			continue
		}
		b.WriteByte(' ')
		offsets = append(offsets, i)
		for i < len(s) {
			r, size := utf8.DecodeRuneInString(s[i:])
			if !unicode.IsSpace(r) {
				break
			}
			i += size
		}
	}
	offsets = append(offsets, len(s))
	return b.String(), offsets
}

// tailsAgree reports whether the end of available matches the end of want
// over the shorter of the two lengths.
func tailsAgree(available, want string) bool {
	n := min(utf8.RuneCountInString(available), utf8.RuneCountInString(want))
	return lastRunes(available, n) == lastRunes(want, n)
}

// headsAgree is tailsAgree for the start of both strings.
func headsAgree(available, want string) bool {
	n := min(utf8.RuneCountInString(available), utf8.RuneCountInString(want))
	return firstRunes(available, n) == firstRunes(want, n)
}
