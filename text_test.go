package bw_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/bw"
	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"replaces non-breaking spaces", "a\u00a0b", "a b"},
		{"collapses horizontal whitespace", "a  \t  b", "a b"},
		{"drops space before newline", "line one   \nline two", "line one\nline two"},
		{"collapses three or more newlines", "a\n\n\n\n\nb", "a\n\nb"},
		{"keeps a single blank line", "a\n\nb", "a\n\nb"},
		{"trims both ends", "  \n hello \n ", "hello"},
		{"returns empty for whitespace only", " \u00a0\n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bw.CleanText(tt.in))
		})
	}
}

func TestClampText(t *testing.T) {
	t.Parallel()

	t.Run("leaves short text untouched", func(t *testing.T) {
		t.Parallel()

		got, cut := bw.ClampText("hello", 10)

		assert.Equal(t, "hello", got)
		assert.False(t, cut)
	})

	t.Run("keeps text exactly at the limit", func(t *testing.T) {
		t.Parallel()

		got, cut := bw.ClampText("hello", 5)

		assert.Equal(t, "hello", got)
		assert.False(t, cut)
	})

	t.Run("cuts long text at the limit", func(t *testing.T) {
		t.Parallel()

		got, cut := bw.ClampText("hello world", 5)

		assert.Equal(t, "hello", got)
		assert.True(t, cut)
	})

	t.Run("counts multibyte characters once", func(t *testing.T) {
		t.Parallel()

		got, cut := bw.ClampText("żółw i kot", 4)

		assert.Equal(t, "żółw", got)
		assert.True(t, cut)
	})

	t.Run("never exceeds the extraction limit", func(t *testing.T) {
		t.Parallel()

		raw := strings.Repeat("x", bw.MaxExtractionChars+10)
		got, cut := bw.ClampText(raw, bw.MaxExtractionChars)

		assert.Equal(t, bw.MaxExtractionChars, bw.CharCount(got))
		assert.True(t, cut)
	})
}
