package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const article = `<!DOCTYPE html>
<html>
<head>
<title>Fox Facts</title>
<meta property="article:published_time" content="2024-03-01T10:00:00Z">
</head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Fox Facts</h1>
<p>The quick brown fox is a small omnivore found across the northern hemisphere.</p>
<p>Foxes are known for their bushy tails and their habit of caching food for later.</p>
</article>
</body>
</html>`

func TestMetadataEnricher_EnrichMetadata(t *testing.T) {
	t.Parallel()

	t.Run("fills missing published time", func(t *testing.T) {
		t.Parallel()

		root, err := html.Parse(strings.NewReader(article))
		require.NoError(t, err)

		md := bw.PageMetadata{URL: "https://example.com/fox"}
		err = trafilatura.NewMetadataEnricher().EnrichMetadata(root, &md)

		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", md.PublishedTime)
		assert.Equal(t, "https://example.com/fox", md.URL)
	})

	t.Run("keeps populated fields", func(t *testing.T) {
		t.Parallel()

		root, err := html.Parse(strings.NewReader(article))
		require.NoError(t, err)

		md := bw.PageMetadata{
			URL:           "https://example.com/fox",
			Title:         "Original Title",
			PublishedTime: "2020-01-01",
		}
		err = trafilatura.NewMetadataEnricher().EnrichMetadata(root, &md)

		require.NoError(t, err)
		assert.Equal(t, "Original Title", md.Title)
		assert.Equal(t, "2020-01-01", md.PublishedTime)
	})

	t.Run("rejects nil input", func(t *testing.T) {
		t.Parallel()

		err := trafilatura.NewMetadataEnricher().EnrichMetadata(nil, &bw.PageMetadata{})

		require.Error(t, err)
		assert.Equal(t, bw.EINVALID, bw.ErrorCode(err))
	})
}
