package jobs

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for an absent job/project and, deliberately, for a
// job that exists but is not owned by the supplied chat id -- the two cases
// must be indistinguishable to defeat id enumeration.
var ErrNotFound = errors.New("not found")

// Publisher is the subset of the broadcast bus the registry and its runners
// need. Declaring it here (rather than importing the streaming package)
// keeps the dependency direction one way: streaming depends on jobs, not
// the reverse.
type Publisher interface {
	Publish(Event)
}

// Config carries the registry's external configuration.
type Config struct {
	APIToken          string
	ProjectsDir       string
	DefaultTimeout    time.Duration
	RetentionDelay    time.Duration
}

type jobRecord struct {
	id         string
	chatID     string
	kind       Kind
	cancelSink chan struct{}
	cancelOnce sync.Once
	createdAt  time.Time

	statusMu sync.RWMutex
	status   Status
}

func (r *jobRecord) setStatus(s Status) {
	r.statusMu.Lock()
	r.status = s
	r.statusMu.Unlock()
}

func (r *jobRecord) getStatus() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}

// sendCancel is best-effort and non-blocking: the first send fills the
// channel's capacity-1 buffer, any later call is a silent no-op.
func (r *jobRecord) sendCancel() {
	r.cancelOnce.Do(func() {
		r.cancelSink <- struct{}{}
	})
}

// Registry is the owned actor holding every live job record. It is the
// single writer of the id→record map; each job's status is written solely
// by that job's runner goroutine, never by the registry itself.
type Registry struct {
	cfg Config
	bus Publisher

	mu    sync.RWMutex
	jobs  map[string]*jobRecord
	alloc idAllocator

	// Optional domain-stack integrations. Each is nil-safe: every call site
	// works whether or not the corresponding backing service was
	// configured.
	mirror      *Mirror
	searchIndex *SearchIndex
	audit       *Audit
	statusCache *StatusCache
}

// SetMirror attaches the best-effort S3 archival mirror.
func (reg *Registry) SetMirror(m *Mirror) { reg.mirror = m }

// SetSearchIndex attaches the supplemental Bleve project-file search index.
func (reg *Registry) SetSearchIndex(s *SearchIndex) { reg.searchIndex = s }

// SetAudit attaches the fire-and-forget NATS audit sink.
func (reg *Registry) SetAudit(a *Audit) { reg.audit = a }

// SetStatusCache attaches the best-effort Redis terminal-status mirror.
func (reg *Registry) SetStatusCache(c *StatusCache) { reg.statusCache = c }

// SearchProjectFiles is the supplemental search operation described in the
// domain-stack expansion: a full-text query over indexed project files. It
// returns an empty result set, not an error, when no search index is
// configured.
func (reg *Registry) SearchProjectFiles(ctx context.Context, projectName, query string) ([]string, error) {
	if reg.searchIndex == nil {
		return nil, nil
	}
	return reg.searchIndex.Search(ctx, projectName, query)
}

// NewRegistry constructs a Registry bound to bus for event publication.
func NewRegistry(cfg Config, bus Publisher) *Registry {
	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = 600 * time.Second
	}
	if cfg.RetentionDelay <= 0 {
		cfg.RetentionDelay = 900 * time.Second
	}
	return &Registry{
		cfg:  cfg,
		bus:  bus,
		jobs: make(map[string]*jobRecord),
	}
}

// ValidateToken compares t against the configured API token in constant
// time.
func (reg *Registry) ValidateToken(t string) bool {
	return subtle.ConstantTimeCompare([]byte(t), []byte(reg.cfg.APIToken)) == 1
}

// NewChatID returns a fresh, opaque chat identifier.
func (reg *Registry) NewChatID() string {
	return uuid.NewString()
}

func (reg *Registry) insert(chatID string, kind Kind) *jobRecord {
	rec := &jobRecord{
		id:         reg.alloc.nextID(),
		chatID:     chatID,
		kind:       kind,
		cancelSink: make(chan struct{}, 1),
		createdAt:  time.Now(),
	}
	rec.setStatus(newCreatedStatus(kind))

	reg.mu.Lock()
	reg.jobs[rec.id] = rec
	reg.mu.Unlock()
	return rec
}

func newCreatedStatus(kind Kind) Status {
	if kind == KindDownload {
		return DownloadStatusOf(DownloadStatus{State: StateCreated})
	}
	return ProcessStatusOf(ProcessStatus{State: StateCreated})
}

// scheduleEviction waits for the retention delay after a record's status has
// gone terminal, then removes it from the map. It is launched once per job,
// after the job's runner has returned, so it never races the runner's final
// status write.
func (reg *Registry) scheduleEviction(id string) {
	time.AfterFunc(reg.cfg.RetentionDelay, func() {
		reg.mu.Lock()
		delete(reg.jobs, id)
		reg.mu.Unlock()
	})
}

// lookup returns the record for id if it exists and is owned by chatID.
func (reg *Registry) lookup(id, chatID string) (*jobRecord, error) {
	reg.mu.RLock()
	rec, ok := reg.jobs[id]
	reg.mu.RUnlock()
	if !ok || rec.chatID != chatID {
		return nil, ErrNotFound
	}
	return rec, nil
}

// SubmitProcessJob spawns a child-process runner and returns its id
// immediately, before the job is necessarily Running.
func (reg *Registry) SubmitProcessJob(chatID, command string, args []string) string {
	rec := reg.insert(chatID, KindProcess)
	go reg.runProcess(rec, command, args)
	return rec.id
}

// SubmitConverterJob runs the fixed converter command against an existing
// project directory, returning ErrNotFound if the directory is absent.
func (reg *Registry) SubmitConverterJob(chatID, projectName string) (string, error) {
	dir := filepath.Join(reg.cfg.ProjectsDir, projectName)
	if _, err := os.Stat(dir); err != nil {
		return "", ErrNotFound
	}
	rec := reg.insert(chatID, KindProcess)
	go reg.runProcess(rec, "gs_log_to_locust_converter", []string{dir})
	return rec.id, nil
}

// SubmitDownloadJob creates the project directory then spawns a
// download-and-unzip runner.
func (reg *Registry) SubmitDownloadJob(chatID, downloadURL, projectName string) (string, error) {
	dir := filepath.Join(reg.cfg.ProjectsDir, projectName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create project dir: %w", err)
	}
	rec := reg.insert(chatID, KindDownload)
	go reg.runDownload(rec, downloadURL, dir)
	return rec.id, nil
}

// CancelJob signals cancellation for id if chatID owns it. The signal is
// advisory and non-blocking: CancelJob never waits for the job to die.
func (reg *Registry) CancelJob(id, chatID string) (string, error) {
	rec, err := reg.lookup(id, chatID)
	if err != nil {
		return "", err
	}
	rec.sendCancel()
	return rec.id, nil
}

// JobStatus returns the current status for id if chatID owns it.
func (reg *Registry) JobStatus(id, chatID string) (Status, error) {
	rec, err := reg.lookup(id, chatID)
	if err != nil {
		return Status{}, err
	}
	return rec.getStatus(), nil
}

// ListProjectFiles lists the basenames of every regular file directly under
// a project directory.
func (reg *Registry) ListProjectFiles(projectName string) ([]string, error) {
	dir := filepath.Join(reg.cfg.ProjectsDir, projectName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("list project files: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// ReadProjectFile returns the full text content of a single file within a
// project directory.
func (reg *Registry) ReadProjectFile(projectName, fileName string) (string, error) {
	path := filepath.Join(reg.cfg.ProjectsDir, projectName, filepath.Base(fileName))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read project file: %w", err)
	}
	return string(data), nil
}
