package auth

import (
	"encoding/base64"
	"strings"
	"testing"

	"audiobrew/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", 32)))
}

func newKeyedSealer(t *testing.T, key string) *chachaSealer {
	sealer, err := NewTokenSealer(&config.Config{Credentials: &config.CredentialsConfig{EncryptionKey: key}})
	require.NoError(t, err)

	return sealer.(*chachaSealer)
}

func TestTokenSealer_SealAndOpen(t *testing.T) {
	sealer := newKeyedSealer(t, testKey())

	sealed, err := sealer.Seal("1//refresh-token")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, sealedPrefix))
	assert.NotContains(t, sealed, "refresh-token")

	again, err := sealer.Seal("1//refresh-token")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again)

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "1//refresh-token", opened)
}

func TestTokenSealer_PassThrough(t *testing.T) {
	sealer := newKeyedSealer(t, testKey())

	empty, err := sealer.Seal("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	legacy, err := sealer.Open("plain-access-token")
	require.NoError(t, err)
	assert.Equal(t, "plain-access-token", legacy)

	sealed, err := sealer.Seal("x")
	require.NoError(t, err)
	twice, err := sealer.Seal(sealed)
	require.NoError(t, err)
	assert.Equal(t, sealed, twice)
}

func TestTokenSealer_WrongKeyFails(t *testing.T) {
	sealer := newKeyedSealer(t, testKey())
	other := newKeyedSealer(t, base64.StdEncoding.EncodeToString([]byte(strings.Repeat("z", 32))))

	sealed, err := sealer.Seal("secret")
	require.NoError(t, err)

	_, err = other.Open(sealed)
	assert.Error(t, err)

	_, err = sealer.Open(sealedPrefix + "@@@")
	assert.Error(t, err)
}

func TestNewTokenSealer_KeyValidation(t *testing.T) {
	plain, err := NewTokenSealer(&config.Config{})
	require.NoError(t, err)
	_, ok := plain.(plainSealer)
	assert.True(t, ok)

	_, err = NewTokenSealer(&config.Config{Credentials: &config.CredentialsConfig{EncryptionKey: "not base64!"}})
	assert.Error(t, err)

	_, err = NewTokenSealer(&config.Config{Credentials: &config.CredentialsConfig{EncryptionKey: base64.StdEncoding.EncodeToString([]byte("short"))}})
	assert.Error(t, err)
}

func TestPlainSealer_RefusesSealedValues(t *testing.T) {
	sealed, err := newKeyedSealer(t, testKey()).Seal("secret")
	require.NoError(t, err)

	_, err = plainSealer{}.Open(sealed)
	assert.Error(t, err)

	value, err := plainSealer{}.Seal("secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", value)
}
