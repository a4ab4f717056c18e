package jobs

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestRunDownload_ExtractsFlattened(t *testing.T) {
	t.Parallel()

	data := buildZip(t, map[string]string{
		"report.txt":        "top level",
		"nested/sub.txt":    "nested file",
		"nested/deep/x.txt": "deeply nested file",
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	dir := t.TempDir()
	status := RunDownload(context.Background(), srv.URL, dir, time.Second, make(chan struct{}))

	require.Equal(t, StateExited, status.State)

	for _, name := range []string{"report.txt", "sub.txt", "x.txt"} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, "expected flattened file %q to exist", name)
		assert.NotEmpty(t, content)
	}
}

func TestRunDownload_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dir := t.TempDir()
	status := RunDownload(context.Background(), srv.URL, dir, time.Second, make(chan struct{}))

	require.Equal(t, StateFailed, status.State)
	assert.Contains(t, status.Reason, "404")
}

func TestRunDownload_NotAZip(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a zip file"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	status := RunDownload(context.Background(), srv.URL, dir, time.Second, make(chan struct{}))

	assert.Equal(t, StateFailed, status.State)
}

func TestRunDownload_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("too slow"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	status := RunDownload(context.Background(), srv.URL, dir, 20*time.Millisecond, make(chan struct{}))

	assert.Equal(t, StateTimeout, status.State)
}

func TestRunDownload_Cancel(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	cancel := make(chan struct{}, 1)
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel <- struct{}{}
	}()

	dir := t.TempDir()
	status := RunDownload(context.Background(), srv.URL, dir, time.Minute, cancel)

	assert.Equal(t, StateCanceled, status.State)
}
