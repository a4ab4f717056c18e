package jobs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
)

// runProcess drives a single Process job from Running through terminal
// status. It is the job's sole runner goroutine and therefore the sole
// writer of rec.status.
func (reg *Registry) runProcess(rec *jobRecord, command string, args []string) {
	rec.setStatus(ProcessStatusOf(ProcessStatus{State: StateRunning}))

	emit := func(io IoType) chunkWriter {
		return func(chunk string) {
			reg.bus.Publish(NewTaskIoChunkEvent(rec.id, chunk, io))
		}
	}

	status := runProcessOnce(context.Background(), command, args, reg.cfg.DefaultTimeout, rec.cancelSink, emit(Stdout), emit(Stderr))
	rec.setStatus(ProcessStatusOf(status))

	slog.Default().With("component", "registry").Debug("process job terminal", "id", rec.id, "status", status.State)

	reg.mirrorStatus(rec.id, ProcessStatusOf(status))
	reg.publishAudit(rec.id, string(KindProcess), status.State)
	reg.scheduleEviction(rec.id)
}

// runDownload drives a single Download job from Running through terminal
// status.
func (reg *Registry) runDownload(rec *jobRecord, downloadURL, projectDir string) {
	rec.setStatus(DownloadStatusOf(DownloadStatus{State: StateRunning}))

	status := RunDownload(context.Background(), downloadURL, projectDir, reg.cfg.DefaultTimeout, rec.cancelSink)
	rec.setStatus(DownloadStatusOf(status))

	slog.Default().With("component", "registry").Debug("download job terminal", "id", rec.id, "status", status.State)

	if status.State == StateExited {
		reg.mirrorExtractedFiles(rec, projectDir)
		reg.indexProjectFiles(filepath.Base(projectDir), projectDir)
	}
	reg.mirrorStatus(rec.id, DownloadStatusOf(status))
	reg.publishAudit(rec.id, string(KindDownload), status.State)
	reg.scheduleEviction(rec.id)
}

func (reg *Registry) mirrorExtractedFiles(rec *jobRecord, projectDir string) {
	if reg.mirror == nil {
		return
	}
	entries, err := os.ReadDir(projectDir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		reg.mirror.MirrorProjectFile(context.Background(), rec.chatID, rec.id, projectDir, e.Name())
	}
}

func (reg *Registry) indexProjectFiles(projectName, projectDir string) {
	if reg.searchIndex == nil {
		return
	}
	entries, err := os.ReadDir(projectDir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(projectDir, e.Name()))
		if err != nil {
			continue
		}
		reg.searchIndex.IndexFile(context.Background(), projectName, e.Name(), string(data))
	}
}

func (reg *Registry) mirrorStatus(id string, status Status) {
	if reg.statusCache == nil {
		return
	}
	reg.statusCache.SetTerminalStatus(context.Background(), id, status)
}

func (reg *Registry) publishAudit(id, kind, state string) {
	if reg.audit == nil {
		return
	}
	reg.audit.PublishJobTerminal(context.Background(), id, kind, state)
}
