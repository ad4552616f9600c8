package linkprobe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe_RemoteReachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	result := New(WithRate(1000)).Probe(context.Background(), server.URL)
	assert.True(t, result.Reachable)
	assert.Empty(t, result.Reason)
}

func TestProbe_RemoteNotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	result := New(WithRate(1000)).Probe(context.Background(), server.URL+"/missing")
	assert.False(t, result.Reachable)
	assert.Contains(t, result.Reason, "HTTP 404")
}

func TestProbe_RemoteConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := server.URL
	server.Close()

	result := New(WithRate(1000)).Probe(context.Background(), url)
	assert.False(t, result.Reachable)
	assert.NotEmpty(t, result.Reason)
}

func TestProbe_FileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0600))

	result := New().Probe(context.Background(), "file://"+path)
	assert.True(t, result.Reachable)
}

func TestProbe_FileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")

	result := New().Probe(context.Background(), "file://"+path)
	assert.False(t, result.Reachable)
	assert.NotEmpty(t, result.Reason)
}
