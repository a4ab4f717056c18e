// Package facade exposes the single public API the HTTP/WebSocket adapter
// calls: component H of the job control plane. It is the only boundary
// between the transport layer and the core (registry, bus, runners).
package facade

import (
	"context"

	"github.com/gorilla/websocket"

	"github.com/JadKHaddad/JobHub/internal/jobs"
	"github.com/JadKHaddad/JobHub/internal/streaming"
)

// Facade wraps a Registry and a Bus behind the operations an HTTP adapter
// needs, so that package never touches jobs/streaming internals directly.
type Facade struct {
	registry *jobs.Registry
	bus      *streaming.Bus
}

// New builds a Facade over an already-constructed registry and bus.
func New(registry *jobs.Registry, bus *streaming.Bus) *Facade {
	return &Facade{registry: registry, bus: bus}
}

// ValidateToken reports whether t is the configured API token.
func (f *Facade) ValidateToken(t string) bool {
	return f.registry.ValidateToken(t)
}

// RequestChatID returns a fresh, opaque chat identifier.
func (f *Facade) RequestChatID() string {
	return f.registry.NewChatID()
}

// SubmitProcessJob spawns a child-process job owned by chatID.
func (f *Facade) SubmitProcessJob(chatID, command string, args []string) string {
	return f.registry.SubmitProcessJob(chatID, command, args)
}

// SubmitDownloadJob spawns a download-and-unzip job owned by chatID.
func (f *Facade) SubmitDownloadJob(chatID, downloadURL, projectName string) (string, error) {
	return f.registry.SubmitDownloadJob(chatID, downloadURL, projectName)
}

// SubmitConverterJob runs the fixed converter command against an existing
// project.
func (f *Facade) SubmitConverterJob(chatID, projectName string) (string, error) {
	return f.registry.SubmitConverterJob(chatID, projectName)
}

// CancelJob advisedly cancels id if chatID owns it.
func (f *Facade) CancelJob(id, chatID string) (string, error) {
	return f.registry.CancelJob(id, chatID)
}

// JobStatus returns id's current status if chatID owns it.
func (f *Facade) JobStatus(id, chatID string) (jobs.Status, error) {
	return f.registry.JobStatus(id, chatID)
}

// ListProjectFiles lists the basenames of files under a project directory.
func (f *Facade) ListProjectFiles(projectName string) ([]string, error) {
	return f.registry.ListProjectFiles(projectName)
}

// ReadProjectFile returns a single project file's text content.
func (f *Facade) ReadProjectFile(projectName, fileName string) (string, error) {
	return f.registry.ReadProjectFile(projectName, fileName)
}

// SearchProjectFiles runs the supplemental full-text search over a
// project's indexed files.
func (f *Facade) SearchProjectFiles(ctx context.Context, projectName, query string) ([]string, error) {
	return f.registry.SearchProjectFiles(ctx, projectName, query)
}

// SubscribeWS accepts an already-upgraded WebSocket connection and drives
// it for its lifetime, relaying bus events to the client. peerAddr is used
// only for logging. It blocks until the connection closes.
func (f *Facade) SubscribeWS(conn *websocket.Conn, peerAddr string) {
	sub := f.bus.Subscribe()
	defer sub.Close()

	outbound := make(chan streaming.ClientMessage, 1)
	go func() {
		for range outbound {
			// The minimal client-to-server language has no variants; any
			// parsed message is drained here so the incoming task never
			// blocks on a full channel.
		}
	}()

	conn2 := streaming.NewConnection(conn, sub, outbound, peerAddr)
	conn2.Run()
	close(outbound)
}
