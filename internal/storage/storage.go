// Package storage writes uploaded binaries to their destination: a local
// directory served under /uploads/, or an S3-compatible bucket (Cloudflare R2).
package storage

import (
	"context"
	"errors"
	"io"
)

// BlobStore stores one binary object per call and reports where it landed.
type BlobStore interface {
	// Put writes r under storedName and returns the backend-local path (disk
	// path or object key) and the dereferenceable public URL.
	Put(ctx context.Context, storedName string, contentType string, r io.Reader) (path string, publicURL string, err error)
}

// ConfigError marks an operator-facing setup mistake (missing bucket or
// directory, permission policy) as opposed to a transient fault. Remediation
// tells the operator how to fix it and is safe to surface.
type ConfigError struct {
	Remediation string
	Err         error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Remediation + ": " + e.Err.Error()
	}
	return e.Remediation
}

func (e *ConfigError) Unwrap() error { return e.Err }

// AsConfigError reports whether err is a storage configuration error.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	ok := errors.As(err, &ce)
	return ce, ok
}
