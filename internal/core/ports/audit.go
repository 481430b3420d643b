package ports

import (
	"context"

	"github.com/playschool-a2z/management-api/internal/core/domain"
)

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	// FindRecent returns up to limit entries, newest first.
	FindRecent(ctx context.Context, limit int64) ([]*domain.AuditEvent, error)
}

// AuditTrail is the non-blocking recording side consumed by the services.
// Implementations enqueue the event for asynchronous persistence; recording
// never fails the operation being audited.
type AuditTrail interface {
	Record(event domain.AuditEvent)
}
