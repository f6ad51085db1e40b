package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitError(t *testing.T) {
	err := NewRateLimitError("request limit reached")
	assert.Equal(t, "request limit reached", err.Error())
	assert.True(t, IsRateLimitError(err))
}

func TestIsRateLimitErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("fetching detail: %w", NewRateLimitError("request limit reached"))
	assert.True(t, IsRateLimitError(wrapped))
}

func TestIsRateLimitErrorOther(t *testing.T) {
	assert.False(t, IsRateLimitError(fmt.Errorf("plain error")))
	assert.False(t, IsRateLimitError(nil))
}
