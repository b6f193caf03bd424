package auth

import (
	"crypto/rand"
	"encoding/base64"
	"strings"

	"audiobrew/config"
	"audiobrew/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

// sealedPrefix marks values produced by Seal so plaintext rows written before
// a key was configured still open.
const sealedPrefix = "enc:v1:"

// chachaSealer encrypts OAuth secrets with XChaCha20-Poly1305.
type chachaSealer struct {
	key []byte
}

// plainSealer stores secrets as given. Used when no key is configured.
type plainSealer struct{}

// NewTokenSealer creates a TokenSealer from credentials.encryptionKey, a
// base64 encoded 32 byte key. An empty key disables sealing.
func NewTokenSealer(cfg *config.Config) (service.TokenSealer, error) {
	if cfg.Credentials == nil || cfg.Credentials.EncryptionKey == "" {
		return plainSealer{}, nil
	}

	key, err := base64.StdEncoding.DecodeString(cfg.Credentials.EncryptionKey)
	if err != nil {
		return nil, errors.Wrap(err, "credentials encryption key is not valid base64")
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.Errorf("credentials encryption key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}

	return &chachaSealer{key: key}, nil
}

func (s *chachaSealer) Seal(plaintext string) (string, error) {
	if plaintext == "" || strings.HasPrefix(plaintext, sealedPrefix) {
		return plaintext, nil
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", errors.WithStack(err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return sealedPrefix + base64.RawStdEncoding.EncodeToString(sealed), nil
}

func (s *chachaSealer) Open(sealed string) (string, error) {
	if !strings.HasPrefix(sealed, sealedPrefix) {
		return sealed, nil
	}

	raw, err := base64.RawStdEncoding.DecodeString(strings.TrimPrefix(sealed, sealedPrefix))
	if err != nil {
		return "", errors.Wrap(err, "sealed token is not valid base64")
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if len(raw) < aead.NonceSize() {
		return "", errors.New("sealed token is too short")
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to open sealed token")
	}

	return string(plaintext), nil
}

func (plainSealer) Seal(plaintext string) (string, error) {
	return plaintext, nil
}

func (plainSealer) Open(sealed string) (string, error) {
	if strings.HasPrefix(sealed, sealedPrefix) {
		return "", errors.New("sealed token found but no encryption key is configured")
	}

	return sealed, nil
}
