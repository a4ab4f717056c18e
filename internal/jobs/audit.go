package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const auditSubject = "jobhub.events"

// auditEvent is published, never subscribed to, by this service: any
// external listener is free to attach its own durable consumer. Using
// plain core-NATS publish (rather than JetStream, which the teacher's
// client uses for job lifecycle events) keeps this sink truly ephemeral --
// there is no persisted stream for this process to own or replay, matching
// the registry's own in-memory, no-durable-state design.
type auditEvent struct {
	JobID     string    `json:"job_id"`
	Kind      string    `json:"kind"`
	State     string    `json:"state"`
	Timestamp time.Time `json:"timestamp"`
}

// Audit fire-and-forget publishes job lifecycle events to NATS. A nil Audit
// makes every call a no-op.
type Audit struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// NewAudit wraps an existing NATS connection. Passing a nil conn yields an
// Audit whose methods are no-ops.
func NewAudit(conn *nats.Conn) *Audit {
	if conn == nil {
		return nil
	}
	return &Audit{conn: conn, logger: slog.Default().With("component", "audit")}
}

// PublishJobTerminal publishes a single job's terminal transition. Publish
// errors are logged, never propagated -- the audit trail is explicitly
// non-authoritative.
func (a *Audit) PublishJobTerminal(ctx context.Context, jobID, kind, state string) {
	if a == nil || a.conn == nil {
		return
	}
	data, err := json.Marshal(auditEvent{JobID: jobID, Kind: kind, State: state, Timestamp: time.Now()})
	if err != nil {
		a.logger.Warn("marshal audit event failed", "job_id", jobID, "error", err)
		return
	}
	if err := a.conn.Publish(auditSubject, data); err != nil {
		a.logger.Warn("publish audit event failed", "job_id", jobID, "error", err)
	}
}
