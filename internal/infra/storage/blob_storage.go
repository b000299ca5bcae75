// Package storage implements the image storage collaborator on top of
// gocloud.dev blob buckets, so local disk and cloud object stores are
// interchangeable through the bucket URL alone.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registered blob drivers. fileblob covers local development; additional
	// drivers (s3blob, gcsblob) only need an import and a bucket URL.
	_ "gocloud.dev/blob/fileblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New opens the configured bucket and returns it as a service.ImageStorage.
// The bucket is closed through the fx lifecycle.
func New(params Params) (service.ImageStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewWithBucket(bucket, params.Config.Storage.PublicBaseURL), nil
}

// NewWithBucket wraps an already-open bucket. Split out so tests can supply
// a bucket without going through fx.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string) service.ImageStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Store writes the image bytes under a fresh UUID key and returns the key.
func (s *blobStorage) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	key := uuid.NewString() + extensionFor(contentType)

	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to write image to bucket")
	}

	return key, nil
}

// Resolve converts a storage key to a public URL.
func (s *blobStorage) Resolve(key string) string {
	if key == "" {
		return ""
	}

	return s.publicBaseURL + "/" + key
}

// Delete removes the stored object. Missing keys are tolerated so that
// replacing a never-uploaded image stays idempotent.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		exists, existsErr := s.bucket.Exists(ctx, key)
		if existsErr == nil && !exists {
			return nil
		}

		return errors.Wrap(err, "failed to delete image from bucket")
	}

	return nil
}

// extensionFor maps the common upload content types to file extensions.
// Unknown types keep a bare UUID key; the bucket stores the content type anyway.
func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
