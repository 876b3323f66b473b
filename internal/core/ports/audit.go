package ports

import (
	"context"

	"github.com/itops/asset-tracker/internal/core/domain"
)

// AuditRecorder accepts security events for asynchronous persistence. Record
// must not block the request path beyond queue backpressure.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditService persists a single audit event; it runs on dispatcher workers.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditRepository is the audit trail storage.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
