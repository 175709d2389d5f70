package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	applog "github.com/agric-empower/portal/internal/platform/logging"
	"github.com/agric-empower/portal/internal/storage"
)

// Store persists the profile record in a client's local store.
type Store struct {
	backend storage.Store
}

// NewStore wraps a local store backend.
func NewStore(backend storage.Store) *Store {
	return &Store{backend: backend}
}

// Save replaces the stored record. Backend errors, including
// storage.ErrQuotaExceeded, are returned unchanged.
func (s *Store) Save(ctx context.Context, clientID string, rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.backend.Set(ctx, clientID, StorageKey, string(raw)); err != nil {
		applog.LogAuditEvent(ctx, applog.AuditEvent{
			Action: "save", ClientID: clientID, Resource: "profile", Key: StorageKey, Result: "failure",
			Details: map[string]any{"error": categorizeError(err)},
		})
		return err
	}
	applog.LogAuditEvent(ctx, applog.AuditEvent{
		Action: "save", ClientID: clientID, Resource: "profile", Key: StorageKey, Result: "success",
		Details: map[string]any{"role": string(rec.Role)},
	})
	return nil
}

// Load returns the stored record. A null or unparsable record is removed
// and reported as ErrNotFound.
func (s *Store) Load(ctx context.Context, clientID string) (Record, error) {
	raw, err := s.backend.Get(ctx, clientID, StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}

	if strings.TrimSpace(raw) == "null" {
		s.discard(ctx, clientID, errNullRecord)
		return Record{}, ErrNotFound
	}
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.discard(ctx, clientID, err)
		return Record{}, ErrNotFound
	}
	return rec, nil
}

var errNullRecord = errors.New("profile is null")

// discard removes an unusable profile so the next Load reports it absent.
func (s *Store) discard(ctx context.Context, clientID string, cause error) {
	applog.LogWarn(ctx, "discarding unreadable profile", zap.Error(cause))
	if err := s.backend.Remove(ctx, clientID, StorageKey); err != nil {
		applog.LogError(ctx, "failed to remove unreadable profile", err)
	}
	applog.LogAuditEvent(ctx, applog.AuditEvent{
		Action: "discard", ClientID: clientID, Resource: "profile", Key: StorageKey, Result: "success",
	})
}

// Clear erases the client's entire local store, not only the profile.
func (s *Store) Clear(ctx context.Context, clientID string) error {
	if err := s.backend.Clear(ctx, clientID); err != nil {
		applog.LogAuditEvent(ctx, applog.AuditEvent{
			Action: "clear", ClientID: clientID, Resource: "store", Result: "failure",
			Details: map[string]any{"error": categorizeError(err)},
		})
		return err
	}
	applog.LogAuditEvent(ctx, applog.AuditEvent{
		Action: "clear", ClientID: clientID, Resource: "store", Result: "success",
	})
	return nil
}

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, storage.ErrQuotaExceeded):
		return "quota_exceeded"
	case errors.Is(err, storage.ErrInvalidClient):
		return "invalid_client"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal_error"
	}
}
