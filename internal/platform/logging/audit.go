package logging

import (
	"context"

	"go.uber.org/zap"
)

// AuditEvent describes a change to a client's local store.
type AuditEvent struct {
	Action   string // "save", "clear", "append", "discard"
	ClientID string
	Resource string // "profile", "contact", "store"
	Key      string // storage key touched, empty for whole-store operations
	Result   string // "success" or "failure"
	Details  map[string]any
}

// LogAuditEvent logs a structured audit event. Entries are diagnostic only;
// nothing downstream treats them as a durable trail.
func LogAuditEvent(ctx context.Context, ev AuditEvent) {
	LoggerFromContext(ctx).Info("audit event",
		zap.String("audit.action", ev.Action),
		zap.String("audit.client_id", ev.ClientID),
		zap.String("audit.resource", ev.Resource),
		zap.String("audit.key", ev.Key),
		zap.String("audit.result", ev.Result),
		zap.Any("audit.details", ev.Details),
	)
}
