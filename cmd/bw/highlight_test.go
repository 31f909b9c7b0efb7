package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/bw"
	main "github.com/fwojciec/bw/cmd/bw"
	"github.com/fwojciec/bw/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedQuotes(quotes ...*bw.Quote) *mock.QuoteService {
	return &mock.QuoteService{
		FindQuotesBySourceFn: func(context.Context, string) ([]*bw.Quote, error) {
			return quotes, nil
		},
	}
}

func TestHighlightCmd_Run(t *testing.T) {
	t.Parallel()

	foxQuote := &bw.Quote{
		ID:   "q-1",
		Text: "quick brown fox",
		Anchor: bw.TextQuoteAnchor{
			Type:   bw.AnchorTypeTextQuote,
			Exact:  "quick brown fox",
			Prefix: "Later the ",
			Suffix: " rests",
		},
		ClaimCount: 2,
	}

	t.Run("lists the highlighted quotes", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(pageFetcher(articleHTML))
		deps.Quotes = storedQuotes(foxQuote)
		cmd := &main.HighlightCmd{URL: "https://example.com/fox"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Highlighted 1 quotes")
		assert.Contains(t, stdout.String(), "q-1")
	})

	t.Run("prints the highlighted page", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(pageFetcher(articleHTML))
		deps.Quotes = storedQuotes(foxQuote)
		cmd := &main.HighlightCmd{URL: "https://example.com/fox", HTML: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `Later the <mark class="bw-highlight" data-quote-id="q-1"`)
		assert.Contains(t, stdout.String(), `>quick brown fox</mark> rests`)
	})

	t.Run("says so when nothing is stored", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(pageFetcher(articleHTML))
		deps.Quotes = storedQuotes()
		cmd := &main.HighlightCmd{URL: "https://example.com/fox"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No stored quotes found on https://example.com/fox")
	})

	t.Run("treats a failed lookup as no quotes", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(pageFetcher(articleHTML))
		deps.Quotes = &mock.QuoteService{
			FindQuotesBySourceFn: func(context.Context, string) ([]*bw.Quote, error) {
				return nil, errors.New("connection refused")
			},
		}
		cmd := &main.HighlightCmd{URL: "https://example.com/fox"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No stored quotes found")
	})

	t.Run("re-highlights when a watched page moves", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)

		var fetches atomic.Int32
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (*bw.Page, error) {
				url := "https://example.com/fox"
				if fetches.Add(1) > 1 {
					url = "https://example.com/fox-moved"
				}
				return &bw.Page{URL: url, ContentType: "text/html", HTML: articleHTML}, nil
			},
		}
		deps, _, _ := newDeps(fetcher)
		deps.Ctx = ctx
		deps.Quotes = storedQuotes(foxQuote)
		out := &cancelingWriter{until: "on https://example.com/fox-moved", cancel: cancel}
		deps.Stdout = out
		cmd := &main.HighlightCmd{URL: "https://example.com/fox", Watch: true, Interval: 10 * time.Millisecond}

		err := cmd.Run(deps)

		require.NoError(t, err)
		got := out.String()
		assert.Contains(t, got, "Highlighted 1 quotes on https://example.com/fox\n")
		assert.Contains(t, got, "Highlighted 1 quotes on https://example.com/fox-moved\n")
	})
}

// cancelingWriter collects output and calls cancel once the output contains
// until.
type cancelingWriter struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	until  string
	cancel context.CancelFunc
}

func (w *cancelingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	n, err := w.buf.Write(p)
	if strings.Contains(w.buf.String(), w.until) {
		w.cancel()
	}
	return n, err
}

func (w *cancelingWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}
