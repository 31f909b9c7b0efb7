package dom_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/bw/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func mustParse(t *testing.T, s string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return root
}

func TestRenderedText(t *testing.T) {
	t.Parallel()

	t.Run("separates paragraphs with a blank line", func(t *testing.T) {
		t.Parallel()

		root := mustParse(t, `<body><p>One</p><p>Two</p></body>`)

		assert.Equal(t, "One\n\nTwo", dom.RenderedText(dom.Body(root)))
	})

	t.Run("collapses whitespace in normal flow", func(t *testing.T) {
		t.Parallel()

		root := mustParse(t, "<body><p>  lots   of\n\n   space  </p></body>")

		assert.Equal(t, "lots of space", dom.RenderedText(dom.Body(root)))
	})

	t.Run("skips scripts and styles", func(t *testing.T) {
		t.Parallel()

		root := mustParse(t, `<body><script>var x = 1;</script><style>p{}</style><p>Visible</p></body>`)

		assert.Equal(t, "Visible", dom.RenderedText(dom.Body(root)))
	})

	t.Run("breaks lines at br and block elements", func(t *testing.T) {
		t.Parallel()

		root := mustParse(t, `<body><div>a<br>b</div><div>c</div></body>`)

		assert.Equal(t, "a\nb\nc", dom.RenderedText(dom.Body(root)))
	})

	t.Run("keeps inline elements on the same line", func(t *testing.T) {
		t.Parallel()

		root := mustParse(t, `<body><p>A <a href="/x">link</a> and <em>emphasis</em>.</p></body>`)

		assert.Equal(t, "A link and emphasis.", dom.RenderedText(dom.Body(root)))
	})
}

func TestCloneTree(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `<body><div class="a"><p>Hello</p></div></body>`)
	body := dom.Body(root)

	clone := dom.CloneTree(body)
	dom.FindElement(clone, "p").FirstChild.Data = "Changed"
	dom.SetAttr(dom.FindElement(clone, "div"), "class", "b")

	assert.Nil(t, clone.Parent)
	assert.Equal(t, "Hello", dom.TextContent(body))
	assert.Equal(t, "a", dom.Attr(dom.FindElement(body, "div"), "class"))
	assert.Equal(t, "Changed", dom.TextContent(clone))
}

func TestTitle(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "<html><head><title>\n  My   Page \n</title></head><body></body></html>")

	assert.Equal(t, "My Page", dom.Title(root))
}

func TestHasClass(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `<body><div class="one  two"></div></body>`)
	div := dom.FindElement(root, "div")

	assert.True(t, dom.HasClass(div, "two"))
	assert.False(t, dom.HasClass(div, "tw"))
}

func TestIsAttached(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `<body><p>x</p></body>`)
	p := dom.FindElement(root, "p")

	assert.True(t, dom.IsAttached(p))
	p.Parent.RemoveChild(p)
	assert.False(t, dom.IsAttached(p))
}
