package service

import "context"

// ImageStorage is the storage-collaborator contract for uploaded images.
// Implementations persist raw bytes under an opaque key and resolve keys back
// to publicly reachable URLs; the domain never sees filesystem or bucket details.
type ImageStorage interface {
	// Store writes the image bytes and returns the opaque storage key.
	// contentType is the declared MIME type of the upload.
	Store(ctx context.Context, data []byte, contentType string) (string, error)

	// Resolve converts a storage key to a public URL. An empty key resolves to
	// an empty URL.
	Resolve(key string) string

	// Delete removes the stored object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
