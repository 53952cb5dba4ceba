// Package media delegates file storage to an S3-compatible media host.
// Uploaded objects are addressed by public URLs that are stored on the
// owning entity; deletion takes the same URL back.
package media

import (
	"context"
	"io"
)

// Store is the remote media host consumed by the services layer.
type Store interface {
	// Upload stores the object under a fresh key of the given kind
	// ("avatars", "videos", ...) and returns its public URL.
	Upload(ctx context.Context, kind, contentType string, body io.Reader) (string, error)

	// Delete removes the object a previously returned URL points to.
	// Deleting an empty URL is a no-op.
	Delete(ctx context.Context, url string) error
}
