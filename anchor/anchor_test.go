package anchor_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/bw/dom"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func mustParse(t *testing.T, s string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return root
}

// textNode returns the first text node under root containing substr.
func textNode(t *testing.T, root *html.Node, substr string) *html.Node {
	t.Helper()
	for _, tn := range dom.BuildIndex(root) {
		if strings.Contains(tn.Text, substr) {
			return tn.Node
		}
	}
	t.Fatalf("no text node contains %q", substr)
	return nil
}

// selectNth selects the nth (zero-based) occurrence of substr inside the
// first text node containing it.
func selectNth(t *testing.T, root *html.Node, substr string, nth int) *dom.Selection {
	t.Helper()
	n := textNode(t, root, substr)
	from := 0
	for i := 0; ; i++ {
		idx := strings.Index(n.Data[from:], substr)
		require.GreaterOrEqual(t, idx, 0, "occurrence %d of %q not found", nth, substr)
		start := from + idx
		if i == nth {
			return &dom.Selection{
				StartContainer: n,
				StartOffset:    start,
				EndContainer:   n,
				EndOffset:      start + len(substr),
			}
		}
		from = start + len(substr)
	}
}
