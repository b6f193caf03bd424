package supabase

import (
	"context"
	"net/http"
	"strings"

	"audiobrew/internal/domain/service"

	"github.com/pkg/errors"
)

type artifactStore struct {
	client *Client
}

// NewArtifactStore creates an ArtifactStore backed by a Supabase storage bucket
func NewArtifactStore(client *Client) service.ArtifactStore {
	return &artifactStore{client: client}
}

func (s *artifactStore) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	err := s.client.do(ctx, request{
		method:      http.MethodPost,
		url:         s.client.objectURL(path),
		rawBody:     data,
		contentType: contentType,
	}, nil)

	return errors.Wrap(err, "failed to upload object")
}

// Delete removes the object. A missing object is not an error.
func (s *artifactStore) Delete(ctx context.Context, path string) error {
	err := s.client.do(ctx, request{
		method: http.MethodDelete,
		url:    s.client.objectURL(path),
	}, nil)
	if IsStatus(err, http.StatusNotFound) {
		return nil
	}

	return errors.Wrap(err, "failed to delete object")
}

func (s *artifactStore) PublicURL(path string) string {
	return s.client.publicPrefix() + path
}

// PathFromURL extracts the object path from any public URL of the bucket.
func (s *artifactStore) PathFromURL(rawURL string) (string, bool) {
	marker := storagePath + "public/" + s.client.Bucket() + "/"
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return "", false
	}

	path := rawURL[idx+len(marker):]
	if path == "" {
		return "", false
	}

	return path, true
}
