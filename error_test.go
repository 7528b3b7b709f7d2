package docdump_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/docdump"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docdump.Errorf(docdump.ENOTFOUND, "root directory %q not found", "docs")

	assert.Equal(t, docdump.ENOTFOUND, docdump.ErrorCode(err))
	assert.Equal(t, "root directory \"docs\" not found", docdump.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docdump.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docdump.EINTERNAL, docdump.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docdump.ErrorMessage(nil))
}
