package storage

import (
	"context"
	"time"
)

// ImageStorage defines the object-store operations the article service
// needs. Object names are bare blob names ("article_..._cover.png");
// implementations decide how names map to stored keys.
type ImageStorage interface {
	// Upload writes a named blob with its content type.
	Upload(ctx context.Context, name string, data []byte, contentType string) error

	// Delete removes a named blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// Exists reports whether a named blob is stored.
	Exists(ctx context.Context, name string) (bool, error)

	// SignedURL returns a time-limited read URL for a named blob.
	SignedURL(ctx context.Context, name string, expiresIn time.Duration) (string, error)

	// List returns the names of all stored blobs, for the reconciliation
	// sweep.
	List(ctx context.Context) ([]string, error)
}
