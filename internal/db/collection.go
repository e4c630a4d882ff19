package db

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by Load when no value exists for the key.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore defines the key-value persistence the record store writes to.
// Store replaces the value for key wholesale; there are no partial writes.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Store(ctx context.Context, key string, data []byte) error
}
