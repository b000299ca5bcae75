package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func newTestStorage(t *testing.T) *blobStorage {
	t.Helper()
	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	return NewWithBucket(bucket, "https://media.example.com/").(*blobStorage)
}

func TestBlobStorage_StoreRoundTrip(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	key, err := storage.Store(ctx, []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Contains(t, key, ".png")

	data, err := storage.bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestBlobStorage_StoreUnknownContentTypeKeepsBareKey(t *testing.T) {
	storage := newTestStorage(t)

	key, err := storage.Store(context.Background(), []byte("blob"), "application/octet-stream")
	require.NoError(t, err)
	assert.NotContains(t, key, ".")
}

func TestBlobStorage_Resolve(t *testing.T) {
	storage := newTestStorage(t)

	assert.Equal(t, "https://media.example.com/abc.png", storage.Resolve("abc.png"))
	assert.Equal(t, "", storage.Resolve(""))
}

func TestBlobStorage_DeleteRemovesObject(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	key, err := storage.Store(ctx, []byte("gone"), "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, key))

	exists, err := storage.bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteToleratesMissingKey(t *testing.T) {
	storage := newTestStorage(t)

	assert.NoError(t, storage.Delete(context.Background(), "never-stored.png"))
	assert.NoError(t, storage.Delete(context.Background(), ""))
}
