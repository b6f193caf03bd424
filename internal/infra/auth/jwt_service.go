// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"audiobrew/config"
	"audiobrew/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	stateIssuer = "audiobrew"
	stateType   = "gmail_oauth_state"
	stateTTL    = 10 * time.Minute
)

// stateClaims is the payload of a signed OAuth state.
type stateClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// jwtStateService signs the OAuth state parameter with HS256 so the callback
// can trust the user id it carries.
type jwtStateService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTStateService is the constructor for jwtStateService.
func NewJWTStateService(cfg *config.Config) (service.OAuthStateService, error) {
	if cfg.SecretKey.OAuthState == "" {
		return nil, errors.New("oauth state secret must be provided")
	}

	return &jwtStateService{
		secret: []byte(cfg.SecretKey.OAuthState),
		ttl:    stateTTL,
		now:    time.Now,
	}, nil
}

// Sign returns a short-lived token naming userID as subject.
func (s *jwtStateService) Sign(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := stateClaims{
		Type: stateType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    stateIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign oauth state")
	}

	return signed, nil
}

// Verify checks signature, expiry and type, and returns the user id.
func (s *jwtStateService) Verify(state string) (uuid.UUID, error) {
	claims := new(stateClaims)
	_, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(stateIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid oauth state")
	}

	if claims.Type != stateType {
		return uuid.Nil, errors.New("oauth state has wrong type")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "oauth state subject is not a uuid")
	}

	return userID, nil
}
