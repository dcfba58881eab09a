package domain

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to HTTP
// status codes; anything else is a backend failure and becomes a 500.
var (
	// ErrNotFound means the article id does not resolve to a stored record.
	ErrNotFound = errors.New("article not found")

	// ErrNoResults means a list or search produced zero records. The API
	// reports this as 404 rather than an empty success.
	ErrNoResults = errors.New("no articles found")

	// ErrInvalidArticle wraps field validation failures. No write happens
	// when it is returned.
	ErrInvalidArticle = errors.New("invalid article data")

	// ErrImageDelete means a stored blob could not be removed. When it is
	// returned from a delete, the database record may already be gone.
	ErrImageDelete = errors.New("failed to delete article image")

	// ErrImageUpload means the new blob could not be written.
	ErrImageUpload = errors.New("failed to upload article image")

	// ErrImageNotFound means the named blob does not exist in storage.
	ErrImageNotFound = errors.New("image not found")
)
