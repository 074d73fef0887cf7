package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	tok, err := Issue("secret", time.Hour, 42, true)
	require.NoError(t, err)

	claims, err := Parse("secret", tok)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestParseWrongSecret(t *testing.T) {
	tok, err := Issue("secret", time.Hour, 42, false)
	require.NoError(t, err)

	_, err = Parse("other-secret", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseExpiredToken(t *testing.T) {
	tok, err := Issue("secret", -time.Minute, 42, false)
	require.NoError(t, err)

	_, err = Parse("secret", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
