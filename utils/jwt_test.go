package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(42)
	require.NoError(t, err)

	userID, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	_, err := ParseSessionToken("not-a-token")
	assert.Error(t, err)
}

func TestParseSessionTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateSessionToken(7)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseSessionToken(token)
	assert.Error(t, err)
}
