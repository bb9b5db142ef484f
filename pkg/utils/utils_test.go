package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	valid := []string{"abc", "user_123", "Guest42", "a2345678901234567890"}
	for _, u := range valid {
		assert.NoError(t, ValidateUsername(u), "expected %q to be valid", u)
	}

	invalid := []string{
		"",
		"ab",                     // too short
		"a23456789012345678901",  // too long
		"_leading",               // leading underscore
		"has space",
		"héllo",
		"semi;colon",
	}
	for _, u := range invalid {
		assert.Error(t, ValidateUsername(u), "expected %q to be invalid", u)
	}
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "guest_ab12", NormalizeUsername("  Guest_AB12 "))
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	a, err := HashPassword("same input")
	require.NoError(t, err)
	b, err := HashPassword("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	_, err := VerifyPassword("whatever", "not-a-hash")
	assert.Error(t, err)

	_, err = VerifyPassword("whatever", "$bcrypt$v=19$m=65536,t=3,p=2$abc$def")
	assert.Error(t, err)
}
