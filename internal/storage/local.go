package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes uploads into a directory the router serves statically
// under /uploads/.
type LocalStore struct {
	dir     string
	baseURL string // e.g. http://localhost:8080
}

var _ BlobStore = (*LocalStore)(nil)

// NewLocalStore ensures the upload directory exists. A directory that cannot
// be created or written is a configuration error, not a transient one.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &ConfigError{
			Remediation: fmt.Sprintf("upload directory %q cannot be created; check the UPLOAD_DIR path and its permissions", dir),
			Err:         err,
		}
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the directory static retrieval is served from.
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Put(ctx context.Context, storedName string, contentType string, r io.Reader) (string, string, error) {
	dstPath := filepath.Join(s.dir, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		if os.IsPermission(err) || os.IsNotExist(err) {
			return "", "", &ConfigError{
				Remediation: fmt.Sprintf("upload directory %q is not writable; check UPLOAD_DIR and its permissions", s.dir),
				Err:         err,
			}
		}
		return "", "", fmt.Errorf("create %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(dstPath)
		return "", "", fmt.Errorf("write %s: %w", dstPath, err)
	}

	return dstPath, s.baseURL + "/uploads/" + storedName, nil
}
