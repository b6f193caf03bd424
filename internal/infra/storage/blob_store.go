// Package storage provides the artifact store for generated audio.
package storage

import (
	"context"
	"strings"

	"audiobrew/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes accepted by storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// OpenBucket opens a gocloud bucket such as file:///var/audio, mem://, gs://name or s3://name.
func OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", bucketURL)
	}

	return bucket, nil
}

// NewBlobStore creates an ArtifactStore over bucket. Public URLs are publicBaseURL + "/" + key.
func NewBlobStore(bucket *blob.Bucket, publicBaseURL string) service.ArtifactStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *blobStore) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	err := s.bucket.WriteAll(ctx, path, data, &blob.WriterOptions{ContentType: contentType})

	return errors.Wrap(err, "failed to write blob")
}

// Delete removes the blob. A missing blob is not an error.
func (s *blobStore) Delete(ctx context.Context, path string) error {
	err := s.bucket.Delete(ctx, path)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrap(err, "failed to delete blob")
}

func (s *blobStore) PublicURL(path string) string {
	return s.publicBaseURL + "/" + path
}

func (s *blobStore) PathFromURL(rawURL string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}

	path := strings.TrimPrefix(rawURL, prefix)

	return path, path != ""
}
