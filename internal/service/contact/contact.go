// Package contact records contact-form messages in the sender's local store.
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	applog "github.com/agric-empower/portal/internal/platform/logging"
	"github.com/agric-empower/portal/internal/platform/timeutil"
	"github.com/agric-empower/portal/internal/storage"
)

// StorageKey is the local store key holding the message list.
const StorageKey = "contactMessages"

// ThankYou is shown after a message is stored.
const ThankYou = "Thank you for your message! We will get back to you soon."

var (
	ErrIncomplete   = errors.New("contact form incomplete")
	ErrInvalidEmail = errors.New("contact email invalid")
)

// Notice returns the visitor-facing text for a validation error, or "" for
// any other error.
func Notice(err error) string {
	switch {
	case errors.Is(err, ErrIncomplete):
		return "Please fill in all fields"
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid email address"
	default:
		return ""
	}
}

// emailPattern treats Unicode separators and BOM as whitespace too.
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)

// Message is one stored submission.
type Message struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Service validates and appends messages.
type Service struct {
	backend storage.Store
	now     timeutil.Clock
}

// NewService creates a contact service. A nil clock uses the system clock.
func NewService(backend storage.Store, clock timeutil.Clock) *Service {
	if clock == nil {
		clock = timeutil.SystemClock
	}
	return &Service{backend: backend, now: clock}
}

// Validate applies the form rules without touching storage.
func Validate(name, email, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return ErrIncomplete
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// Submit validates the form and appends it to the client's message list.
// Nothing is written when validation fails.
func (s *Service) Submit(ctx context.Context, clientID, name, email, message string) (Message, error) {
	if err := Validate(name, email, message); err != nil {
		return Message{}, err
	}

	msg := Message{
		Name:      name,
		Email:     email,
		Message:   message,
		Timestamp: timeutil.ISOString(s.now()),
	}

	list, err := s.load(ctx, clientID)
	if err != nil {
		return Message{}, err
	}
	list = append(list, msg)

	raw, err := json.Marshal(list)
	if err != nil {
		return Message{}, fmt.Errorf("encode messages: %w", err)
	}
	if err := s.backend.Set(ctx, clientID, StorageKey, string(raw)); err != nil {
		applog.LogAuditEvent(ctx, applog.AuditEvent{
			Action: "append", ClientID: clientID, Resource: "contact", Key: StorageKey, Result: "failure",
		})
		return Message{}, err
	}

	applog.LogAuditEvent(ctx, applog.AuditEvent{
		Action: "append", ClientID: clientID, Resource: "contact", Key: StorageKey, Result: "success",
		Details: map[string]any{"count": len(list)},
	})
	return msg, nil
}

// load returns the stored list. An unreadable list starts over empty.
func (s *Service) load(ctx context.Context, clientID string) ([]Message, error) {
	raw, err := s.backend.Get(ctx, clientID, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []Message
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		applog.LogWarn(ctx, "replacing unreadable contact messages", zap.Error(err))
		return nil, nil
	}
	return list, nil
}
