package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrNotFound, "goal missing")
	assert.Equal(t, "[NOT_FOUND] goal missing", err.Error())
	assert.Equal(t, ErrNotFound, err.Code)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrInvalidInput, "bad value %q", "x")
	assert.Equal(t, `[INVALID_INPUT] bad value "x"`, err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, ErrStorageWrite, "cannot save")

	assert.Equal(t, "[STORAGE_WRITE] cannot save: disk full", err.Error())
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, cause))
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "x"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "x %d", 1))
}

func TestIs_MatchesByCode(t *testing.T) {
	err := New(ErrNotFound, "first")
	other := New(ErrNotFound, "second")
	different := New(ErrInternal, "third")

	assert.True(t, stderrors.Is(err, other))
	assert.False(t, stderrors.Is(err, different))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrBinaryNotFound, "binary not found at %s", "/repo/bin/hiper")
	wrapped := fmt.Errorf("install failed: %w", err)

	assert.True(t, IsErrorCode(err, ErrBinaryNotFound))
	assert.True(t, IsErrorCode(wrapped, ErrBinaryNotFound), "survives wrapping")
	assert.False(t, IsErrorCode(err, ErrNotFound))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrBinaryNotFound))
	assert.False(t, IsErrorCode(nil, ErrBinaryNotFound))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrConfigLoad, GetErrorCode(New(ErrConfigLoad, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrBinaryNotFound, "missing").
		WithDetail("path", "/repo/bin/hiper").
		WithDetail("attempts", 2)

	require.NotNil(t, err.Details)
	assert.Equal(t, "/repo/bin/hiper", err.Details["path"])
	assert.Equal(t, 2, err.Details["attempts"])
}
