package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/mock"
	bwslog "github.com/fwojciec/bw/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingQuoteService_FindQuotesBySource(t *testing.T) {
	t.Parallel()

	t.Run("logs the lookup at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.QuoteService{
			FindQuotesBySourceFn: func(context.Context, string) ([]*bw.Quote, error) {
				return []*bw.Quote{{ID: "q1"}, {ID: "q2"}}, nil
			},
		}

		quotes, err := bwslog.NewLoggingQuoteService(inner, logger).FindQuotesBySource(context.Background(), "https://example.com/a")

		require.NoError(t, err)
		assert.Len(t, quotes, 2)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "find quotes")
		assert.Contains(t, output, "url=https://example.com/a")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs failures at warning level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.QuoteService{
			FindQuotesBySourceFn: func(context.Context, string) ([]*bw.Quote, error) {
				return nil, bw.Errorf(bw.EUNAVAILABLE, "backend down")
			},
		}

		_, err := bwslog.NewLoggingQuoteService(inner, logger).FindQuotesBySource(context.Background(), "https://example.com/a")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "err=\"backend down\"")
	})
}
