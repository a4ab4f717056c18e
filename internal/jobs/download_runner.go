package jobs

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// RunDownload implements the download-and-unzip runner: component D. It GETs
// downloadURL, parses the body as a ZIP archive, and extracts every entry
// into projectDir under its flattened basename -- directory structure
// inside the archive is discarded to prevent path traversal from crafted
// entry names. It races the whole pipeline against timeout and cancel.
func RunDownload(ctx context.Context, downloadURL, projectDir string, timeout time.Duration, cancel <-chan struct{}) DownloadStatus {
	logger := slog.Default().With("component", "download-runner", "project_dir", projectDir)

	fetchCtx := ctx
	var timeoutCh <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutCh = timer.C

		var fetchCancel context.CancelFunc
		fetchCtx, fetchCancel = context.WithTimeout(ctx, timeout)
		defer fetchCancel()
	}

	done := make(chan DownloadStatus, 1)
	go func() {
		done <- runDownloadPipeline(fetchCtx, downloadURL, projectDir, logger)
	}()

	select {
	case <-timeoutCh:
		return DownloadStatus{State: StateTimeout}
	case <-cancel:
		return DownloadStatus{State: StateCanceled}
	case result := <-done:
		return result
	}
}

func runDownloadPipeline(ctx context.Context, downloadURL, projectDir string, logger *slog.Logger) DownloadStatus {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return DownloadStatus{State: StateFailed, Reason: err.Error()}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return DownloadStatus{State: StateFailed, Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return DownloadStatus{State: StateFailed, Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return DownloadStatus{State: StateFailed, Reason: err.Error()}
	}

	reader, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return DownloadStatus{State: StateFailed, Reason: err.Error()}
	}

	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		if ctx.Err() != nil {
			return DownloadStatus{State: StateFailed, Reason: ctx.Err().Error()}
		}

		base := filepath.Base(entry.Name)
		if base == "." || base == string(filepath.Separator) {
			continue
		}
		outPath := filepath.Join(projectDir, base)

		if err := extractEntry(entry, outPath); err != nil {
			logger.Warn("extraction failed", "entry", entry.Name, "error", err)
			return DownloadStatus{State: StateFailed, Reason: err.Error()}
		}
		logger.Debug("extracted entry", "entry", entry.Name, "out", outPath)
	}

	return DownloadStatus{State: StateExited}
}

func extractEntry(entry *zip.File, outPath string) error {
	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
