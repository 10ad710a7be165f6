package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 answers just enough of the S3 REST API (path-style PutObject and
// HeadObject) to exercise the store without a real bucket.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte

	// dropOnHead makes every HeadObject miss, simulating a write that never
	// became visible.
	dropOnHead bool
	// noBucket rejects every write with the NoSuchBucket error shape.
	noBucket bool
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := strings.TrimPrefix(r.URL.Path, "/")

	switch r.Method {
	case http.MethodPut:
		if f.noBucket {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchBucket</Code><Message>The specified bucket does not exist</Message></Error>`)
			return
		}
		body, _ := io.ReadAll(r.Body)
		f.objects[key] = body
		w.WriteHeader(http.StatusOK)
	case http.MethodHead:
		if f.dropOnHead {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if _, ok := f.objects[key]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newFakeS3Store(t *testing.T, fake *fakeS3) *S3Store {
	t.Helper()
	if fake.objects == nil {
		fake.objects = make(map[string][]byte)
	}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider("test-key", "test-secret", ""),
		Region:      "auto",
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(srv.URL)
		o.UsePathStyle = true
	})

	return &S3Store{client: client, bucket: "files", baseURL: "https://cdn.example.com"}
}

func TestS3StorePutAndVerify(t *testing.T) {
	fake := &fakeS3{}
	s := newFakeS3Store(t, fake)

	payload := []byte("bytes for the bucket")
	path, url, err := s.Put(context.Background(), "123-456-notes.txt", "text/plain", bytes.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, "123-456-notes.txt", path)
	assert.Equal(t, "https://cdn.example.com/123-456-notes.txt", url)
	assert.Equal(t, payload, fake.objects["files/123-456-notes.txt"], "uploaded bytes must reach the bucket unchanged")

	ok, err := s.VerifyObjectExists(context.Background(), "123-456-notes.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.VerifyObjectExists(context.Background(), "never-uploaded.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestS3StorePutFailsWhenObjectNotVisible(t *testing.T) {
	s := newFakeS3Store(t, &fakeS3{dropOnHead: true})

	_, _, err := s.Put(context.Background(), "123-456-ghost.txt", "text/plain", strings.NewReader("vanishes"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not visible after upload")
}

func TestS3StoreMissingBucketIsConfigError(t *testing.T) {
	s := newFakeS3Store(t, &fakeS3{noBucket: true})

	_, _, err := s.Put(context.Background(), "123-456-doc.pdf", "application/pdf", strings.NewReader("doc"))
	require.Error(t, err)

	ce, ok := AsConfigError(err)
	require.True(t, ok, "missing bucket must surface as a configuration error, got %v", err)
	assert.Contains(t, ce.Remediation, `bucket "files" not found`)
}

func TestNewS3StoreWithoutBucketName(t *testing.T) {
	_, err := NewS3Store("key", "secret", "account", "", "auto", "https://cdn.example.com")
	require.Error(t, err)
	_, ok := AsConfigError(err)
	assert.True(t, ok)
}
