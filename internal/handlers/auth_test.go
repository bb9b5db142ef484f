package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc123", extractBearerToken("Bearer abc123"))
	assert.Equal(t, "abc123", extractBearerToken("bearer abc123"))
	assert.Equal(t, "abc123", extractBearerToken("  Bearer abc123  "))

	assert.Empty(t, extractBearerToken(""))
	assert.Empty(t, extractBearerToken("abc123"))
	assert.Empty(t, extractBearerToken("Basic abc123"))
	assert.Empty(t, extractBearerToken("Bearer"))
}

func TestGenerateGuestHandle(t *testing.T) {
	a, err := generateGuestHandle()
	assert.NoError(t, err)
	assert.Regexp(t, `^guest_[0-9a-f]{8}$`, a)

	b, err := generateGuestHandle()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
