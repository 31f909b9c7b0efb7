package main_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/bw"
	main "github.com/fwojciec/bw/cmd/bw"
	"github.com/fwojciec/bw/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the anchor of the chosen occurrence", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(pageFetcher(articleHTML))
		cmd := &main.AnchorCmd{URL: "https://example.com/fox", Text: "quick brown fox", Nth: 0}

		err := cmd.Run(deps)

		require.NoError(t, err)
		var a bw.TextQuoteAnchor
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &a))
		assert.Equal(t, bw.AnchorTypeTextQuote, a.Type)
		assert.Equal(t, "quick brown fox", a.Exact)
		assert.Equal(t, "The ", a.Prefix)
		assert.Contains(t, a.Suffix, " jumps over")
		assert.Equal(t, "p:nth-of-type(1)", a.SelectorHint)
	})

	t.Run("reports text missing from the page", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(pageFetcher(articleHTML))
		cmd := &main.AnchorCmd{URL: "https://example.com/fox", Text: "purple badger"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, bw.ENOTFOUND, bw.ErrorCode(err))
		assert.Contains(t, stderr.String(), "purple badger")
	})

	t.Run("reports fetch failures", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (*bw.Page, error) {
				return nil, bw.Errorf(bw.EUNAVAILABLE, "HTTP 503 for https://example.com/fox")
			},
		}
		deps, _, stderr := newDeps(fetcher)
		cmd := &main.AnchorCmd{URL: "https://example.com/fox", Text: "fox"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "HTTP 503")
	})
}
