package bw_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/bw"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := bw.Errorf(bw.ENOTFOUND, "quote %q not found", "q1")

	assert.Equal(t, bw.ENOTFOUND, bw.ErrorCode(err))
	assert.Equal(t, "quote \"q1\" not found", bw.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bw.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bw.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("lookup: %w", bw.Errorf(bw.EUNAVAILABLE, "backend down"))

	assert.Equal(t, bw.EUNAVAILABLE, bw.ErrorCode(err))
	assert.Equal(t, "backend down", bw.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, bw.EINTERNAL, bw.ErrorCode(err))
	assert.Equal(t, "Internal error", bw.ErrorMessage(err))
}
