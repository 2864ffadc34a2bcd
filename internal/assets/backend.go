package assets

import (
	"context"
	"errors"
	"io"
)

var (
	ErrNotFound    = errors.New("asset not found")
	ErrInvalidName = errors.New("invalid asset name")
)

// Backend persists asset bytes by name. Delete must treat a missing object as
// success.
type Backend interface {
	Put(ctx context.Context, name string, data []byte, contentType string) error
	Delete(ctx context.Context, name string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
