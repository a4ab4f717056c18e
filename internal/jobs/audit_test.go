package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAudit_NilConnYieldsNilAudit(t *testing.T) {
	t.Parallel()

	a := NewAudit(nil)
	assert.Nil(t, a)
}

func TestAudit_NilAuditPublishIsNoOp(t *testing.T) {
	t.Parallel()

	var a *Audit
	// Must not panic even though the receiver is nil.
	a.PublishJobTerminal(context.Background(), "job-1", string(KindProcess), StateExited)
}
