package storage

import (
	"context"
	"io"
)

// Storage persists project images that the authoring form submits inline as
// data URIs. The local filesystem implementation can be swapped for an
// object store without touching the handlers.
type Storage interface {
	// Save writes the blob under key (e.g. "projects/<uuid>.png") and
	// returns the URL it will be served from.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the blob for key. Missing blobs are not an error.
	Delete(ctx context.Context, key string) error
}
