package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage stores uploaded artifacts: work order signatures and
// photos, payroll signatures, asset documents. Paths are relative keys;
// GetURL turns a key into something a browser can fetch.
type FileStorage interface {
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)
	Download(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)
	Exists(ctx context.Context, path string) (bool, error)
}
