package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePutRoundtrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, "http://localhost:8080/")
	require.NoError(t, err)

	payload := []byte("hello, qr-drop")
	path, url, err := s.Put(context.Background(), "123-456-hello.txt", "text/plain", bytes.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "123-456-hello.txt"), path)
	assert.Equal(t, "http://localhost:8080/uploads/123-456-hello.txt", url)

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, stored, "stored bytes must be identical to the input")
}

func TestNewLocalStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStore(dir, "http://localhost:8080")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewLocalStoreUnwritablePathIsConfigError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are meaningless")
	}
	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o555))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	_, err := NewLocalStore(filepath.Join(parent, "uploads"), "http://localhost:8080")
	require.Error(t, err)
	_, ok := AsConfigError(err)
	assert.True(t, ok, "expected a configuration error, got %v", err)
}

func TestAsConfigError(t *testing.T) {
	ce := &ConfigError{Remediation: "create the bucket"}
	wrapped := fmt.Errorf("put object: %w", ce)

	got, ok := AsConfigError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "create the bucket", got.Remediation)

	_, ok = AsConfigError(errors.New("plain failure"))
	assert.False(t, ok)
}
