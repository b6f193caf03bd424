package auth

import (
	"testing"
	"time"

	"audiobrew/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStateService(t *testing.T, secret string) *jwtStateService {
	cfg := &config.Config{}
	cfg.SecretKey.OAuthState = secret

	svc, err := NewJWTStateService(cfg)
	require.NoError(t, err)

	return svc.(*jwtStateService)
}

func TestJWTStateService_SignAndVerify(t *testing.T) {
	svc := newTestStateService(t, "test_state_secret_key_very_long_for_testing")
	userID := uuid.New()

	state, err := svc.Sign(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, state)

	got, err := svc.Verify(state)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTStateService_RejectsForeignSecret(t *testing.T) {
	signer := newTestStateService(t, "secret-one")
	verifier := newTestStateService(t, "secret-two")

	state, err := signer.Sign(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(state)
	assert.Error(t, err)
}

func TestJWTStateService_RejectsExpired(t *testing.T) {
	svc := newTestStateService(t, "secret")
	issued := time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	state, err := svc.Sign(uuid.New())
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(stateTTL + time.Minute) }
	_, err = svc.Verify(state)
	assert.Error(t, err)
}

func TestJWTStateService_RejectsOtherTokenTypes(t *testing.T) {
	svc := newTestStateService(t, "secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":  stateIssuer,
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(time.Minute).Unix(),
		"type": "access",
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)

	_, err = svc.Verify("not-a-jwt")
	assert.Error(t, err)
}

func TestNewJWTStateService_RequiresSecret(t *testing.T) {
	_, err := NewJWTStateService(&config.Config{})
	assert.Error(t, err)
}
