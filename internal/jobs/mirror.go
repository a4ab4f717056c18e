package jobs

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// archiveUploader is the subset of storage.S3Client that Mirror needs. It is
// declared here rather than importing the storage package's concrete type
// directly in every call site, so tests can substitute a fake.
type archiveUploader interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64) error
	GenerateKey(chatID, jobID, filename string) string
}

// Mirror best-effort archives every file extracted by a download job to S3
// (or an S3-compatible store such as MinIO). It is a purely supplemental
// integration: nothing in the registry ever reads back through Mirror, and
// a nil Mirror (no S3 configured) makes every call a no-op.
type Mirror struct {
	uploader archiveUploader
	logger   *slog.Logger
}

// NewMirror wraps an upload-capable client. Passing a nil uploader yields a
// Mirror whose methods are no-ops, so callers never need to branch on
// whether S3 is configured.
func NewMirror(uploader archiveUploader) *Mirror {
	return &Mirror{uploader: uploader, logger: slog.Default().With("component", "mirror")}
}

// MirrorProjectFile uploads a single extracted file under its chat/job
// scoped key. Failures are logged, never propagated: the archival copy is
// never required for a download job to be considered successful.
func (m *Mirror) MirrorProjectFile(ctx context.Context, chatID, jobID, projectDir, fileName string) {
	if m == nil || m.uploader == nil {
		return
	}

	data, err := os.ReadFile(filepath.Join(projectDir, fileName))
	if err != nil {
		m.logger.Warn("mirror: read extracted file failed", "file", fileName, "error", err)
		return
	}

	key := m.uploader.GenerateKey(chatID, jobID, fileName)
	if err := m.uploader.Upload(ctx, key, bytes.NewReader(data), int64(len(data))); err != nil {
		m.logger.Warn("mirror: upload failed", "key", key, "error", err)
	}
}
