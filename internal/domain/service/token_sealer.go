// Package service defines interfaces for core, stateless domain logic and the
// external collaborators the use cases depend on.
package service

// TokenSealer protects OAuth secrets at rest.
// This abstracts the underlying AEAD, keeping the domain pure.
type TokenSealer interface {
	// Seal encrypts plaintext. Empty input is returned unchanged.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. Values that were never sealed are returned unchanged.
	Open(sealed string) (string, error)
}
