package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStore(bucket, "https://cdn.example.com/audio/")

	require.NoError(t, store.Upload(ctx, "podcasts/u/a.mp3", []byte("ID3 data"), "audio/mpeg"))

	attrs, err := bucket.Attributes(ctx, "podcasts/u/a.mp3")
	require.NoError(t, err)
	assert.Equal(t, "audio/mpeg", attrs.ContentType)

	data, err := bucket.ReadAll(ctx, "podcasts/u/a.mp3")
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3 data"), data)

	require.NoError(t, store.Delete(ctx, "podcasts/u/a.mp3"))
	exists, err := bucket.Exists(ctx, "podcasts/u/a.mp3")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, store.Delete(ctx, "podcasts/u/a.mp3"))
}

func TestBlobStore_PublicURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStore(bucket, "https://cdn.example.com/audio/")

	url := store.PublicURL("podcasts/u/a.mp3")
	assert.Equal(t, "https://cdn.example.com/audio/podcasts/u/a.mp3", url)

	path, ok := store.PathFromURL(url)
	assert.True(t, ok)
	assert.Equal(t, "podcasts/u/a.mp3", path)

	_, ok = store.PathFromURL("https://example.com/audio/x.mp3")
	assert.False(t, ok)
}

func TestOpenBucket_Mem(t *testing.T) {
	bucket, err := OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	assert.NoError(t, bucket.Close())

	_, err = OpenBucket(context.Background(), "nope://bucket")
	assert.Error(t, err)
}
