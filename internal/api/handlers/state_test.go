package handlers

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOauthStateRoundtrip(t *testing.T) {
	state, err := oauthState(map[string]string{"flow": "register"})
	require.NoError(t, err)

	data, err := decodeOauthState(state)
	require.NoError(t, err)
	assert.Equal(t, "register", data["flow"])
}

func TestOauthStateNonceIsURLSafe(t *testing.T) {
	state, err := oauthState(map[string]string{"flow": "login"})
	require.NoError(t, err)

	parts := strings.Split(state, ".")
	require.Len(t, parts, 2)

	// The nonce is 16 random bytes through the shared token generator, so it
	// must decode as unpadded URL-safe base64.
	nonce, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.Len(t, nonce, 16)
}

func TestOauthStateIsUnpredictable(t *testing.T) {
	a, err := oauthState(map[string]string{"flow": "login"})
	require.NoError(t, err)
	b, err := oauthState(map[string]string{"flow": "login"})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDecodeOauthStateRejectsGarbage(t *testing.T) {
	for _, state := range []string{"", "nodot", "a.b.c", "ok.!!!not-base64!!!"} {
		_, err := decodeOauthState(state)
		assert.Error(t, err, "state %q", state)
	}
}
