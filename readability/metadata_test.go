package readability_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const article = `<!DOCTYPE html>
<html>
<head>
<title>Fox Facts</title>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "NewsArticle",
  "headline": "Fox Facts",
  "author": {"@type": "Person", "name": "Jane Doe"},
  "publisher": {"@type": "Organization", "name": "Animal Times"}
}
</script>
</head>
<body>
<article>
<h1>Fox Facts</h1>
<p>The quick brown fox is a small omnivore found across the northern hemisphere, from forests to city parks.</p>
<p>Foxes are known for their bushy tails and their habit of caching food for later, often burying it under leaves.</p>
</article>
</body>
</html>`

func TestMetadataEnricher_EnrichMetadata(t *testing.T) {
	t.Parallel()

	t.Run("fills author and site name from structured data", func(t *testing.T) {
		t.Parallel()

		root, err := html.Parse(strings.NewReader(article))
		require.NoError(t, err)

		md := bw.PageMetadata{URL: "https://example.com/fox", Title: "Fox Facts"}
		err = readability.NewMetadataEnricher().EnrichMetadata(root, &md)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", md.Author)
		assert.Equal(t, "Animal Times", md.SiteName)
		assert.NotEmpty(t, md.PageDescription)
	})

	t.Run("keeps populated fields", func(t *testing.T) {
		t.Parallel()

		root, err := html.Parse(strings.NewReader(article))
		require.NoError(t, err)

		md := bw.PageMetadata{Author: "Meta Author", SiteName: "Meta Site"}
		err = readability.NewMetadataEnricher().EnrichMetadata(root, &md)

		require.NoError(t, err)
		assert.Equal(t, "Meta Author", md.Author)
		assert.Equal(t, "Meta Site", md.SiteName)
	})

	t.Run("does not modify the source tree", func(t *testing.T) {
		t.Parallel()

		root, err := html.Parse(strings.NewReader(article))
		require.NoError(t, err)
		var before strings.Builder
		require.NoError(t, html.Render(&before, root))

		err = readability.NewMetadataEnricher().EnrichMetadata(root, &bw.PageMetadata{})
		require.NoError(t, err)

		var after strings.Builder
		require.NoError(t, html.Render(&after, root))
		assert.Equal(t, before.String(), after.String())
	})

	t.Run("rejects nil input", func(t *testing.T) {
		t.Parallel()

		err := readability.NewMetadataEnricher().EnrichMetadata(nil, &bw.PageMetadata{})

		require.Error(t, err)
		assert.Equal(t, bw.EINVALID, bw.ErrorCode(err))
	})
}
