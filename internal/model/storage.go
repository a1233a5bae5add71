package model

import (
	"context"
	"io"
)

// FileStorage holds the downloadable files of products.
type FileStorage interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (File, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// File is an opened stored object. Callers must close Body.
type File struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}
