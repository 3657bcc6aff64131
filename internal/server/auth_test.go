package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := NewSessionToken(secret, "table-123")
	require.NoError(t, err)

	id, err := ParseSessionToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "table-123", id)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := NewSessionToken([]byte("right"), "table-123")
	require.NoError(t, err)

	_, err = ParseSessionToken([]byte("wrong"), token)
	assert.Error(t, err)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken([]byte("secret"), "not.a.token")
	assert.Error(t, err)
}
