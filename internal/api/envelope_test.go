package api

import (
	"encoding/json"
	"testing"
)

func TestNewRedirectEnvelope(t *testing.T) {
	trace := "trace-123"
	env := NewRedirectEnvelope(&trace, "/index.html", "You have been logged out successfully!")

	if env.Data != nil || env.Error != nil {
		t.Fatalf("expected no data and no error, got %+v", env)
	}
	if env.Meta.Redirect != "/index.html" {
		t.Fatalf("unexpected redirect: %q", env.Meta.Redirect)
	}
	if env.Meta.Notice != "You have been logged out successfully!" {
		t.Fatalf("unexpected notice: %q", env.Meta.Notice)
	}

	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	meta, _ := decoded["meta"].(map[string]any)
	if meta["redirect"] != "/index.html" || meta["traceId"] != trace {
		t.Fatalf("unexpected meta JSON: %v", meta)
	}
}

func TestNewErrorEnvelopeClonesDetails(t *testing.T) {
	trace := "trace-456"
	details := []FieldIssue{{Field: "email", Issue: "Please enter a valid email address"}}
	env := NewErrorEnvelope[struct{}](&trace, "UNPROCESSABLE_ENTITY", "invalid input", details)

	if env.Data != nil {
		t.Fatalf("expected Data to be nil, got %+v", env.Data)
	}
	if env.Error == nil || env.Error.TraceID == nil || *env.Error.TraceID != trace {
		t.Fatalf("expected error with trace ID, got %+v", env.Error)
	}

	details[0].Issue = "mutated"
	if env.Error.Details[0].Issue != "Please enter a valid email address" {
		t.Fatalf("details should be copied, got %q", env.Error.Details[0].Issue)
	}
}

func TestNewErrorEnvelopeWithoutDetails(t *testing.T) {
	env := NewErrorEnvelope[struct{}](nil, "NOT_FOUND", "resource not found", nil)
	if env.Error.Details != nil {
		t.Fatalf("expected nil details, got %+v", env.Error.Details)
	}
	if env.Meta.TraceID != nil {
		t.Fatalf("expected nil trace ID, got %v", *env.Meta.TraceID)
	}
}
