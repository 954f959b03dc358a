package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ErrKindQueryFailed, "statement execution failed")
	assert.Equal(t, "[query_failed] statement execution failed", plain.Error())

	wrapped := Wrap(ErrKindConnectionFailed, "driver connect failed", errors.New("SQLDriverConnect returned -1"))
	assert.Equal(t, "[connection_failed] driver connect failed: SQLDriverConnect returned -1", wrapped.Error())
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("native failure")
	err := Wrap(ErrKindLoadFailed, "cannot open driver manager", cause)

	assert.ErrorIs(t, err, cause)
	// Predicates still work through further wrapping.
	outer := fmt.Errorf("connector init: %w", err)
	assert.True(t, IsLoadFailed(outer))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"load failed", New(ErrKindLoadFailed, "x"), IsLoadFailed},
		{"connection failed", New(ErrKindConnectionFailed, "x"), IsConnectionFailed},
		{"query failed", New(ErrKindQueryFailed, "x"), IsQueryFailed},
		{"invalid input", New(ErrKindInvalidInput, "x"), IsInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.pred(tt.err))
		})
	}

	plain := errors.New("not an errs.Error")
	assert.False(t, IsLoadFailed(plain))
	assert.False(t, IsConnectionFailed(plain))
	assert.False(t, IsQueryFailed(plain))
	assert.False(t, IsInvalidInput(plain))
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "load_failed", ErrKindLoadFailed.String())
	assert.Equal(t, "connection_failed", ErrKindConnectionFailed.String())
	assert.Equal(t, "query_failed", ErrKindQueryFailed.String())
	assert.Equal(t, "invalid_input", ErrKindInvalidInput.String())
	assert.Equal(t, "unknown", ErrKindUnknown.String())
}
