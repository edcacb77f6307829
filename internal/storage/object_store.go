// Package storage holds the bucket-scoped object store behind document
// uploads. Objects are addressed by a public URL once stored.
package storage

import (
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("storage: object not found")

type ObjectStore interface {
	// Put stores the object under path and returns its public URL.
	Put(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
}
