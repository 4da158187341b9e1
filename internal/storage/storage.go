// Package storage wraps the S3-compatible object store that holds product
// images. Uploads are streamed; nothing touches local disk.
package storage

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PutObjectOptions carries upload parameters. Size is -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Storage is the object store used by the product service.
type Storage interface {
	// Put uploads r under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ProductImageKey returns products/<productID>/<uuid><ext>. The extension is
// taken from filename and lower-cased.
func ProductImageKey(productID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join("products", productID, uuid.NewString()+ext)
}
