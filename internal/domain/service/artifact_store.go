package service

import "context"

// ArtifactStore is remote blob storage for generated audio.
type ArtifactStore interface {
	// Upload stores data at path. Any non-2xx response is an error.
	Upload(ctx context.Context, path string, data []byte, contentType string) error

	// Delete removes the object at path. A missing object is not an error.
	Delete(ctx context.Context, path string) error

	// PublicURL returns the URL at which path is publicly readable.
	PublicURL(path string) string

	// PathFromURL reverses PublicURL. It reports false for foreign URLs.
	PathFromURL(url string) (string, bool)
}
