package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedContext(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, recorded := observer.New(level)
	return contextWithLogger(context.Background(), zap.New(core)), recorded
}

func TestTraceIDFromContext(t *testing.T) {
	ctx := contextWithTraceID(context.Background(), "trace-1")
	got := TraceIDFromContext(ctx)
	if got == nil || *got != "trace-1" {
		t.Fatalf("expected trace-1, got %v", got)
	}
	if TraceIDFromContext(context.Background()) != nil {
		t.Fatal("expected nil trace ID on empty context")
	}
	if contextWithTraceID(context.Background(), "") != context.Background() {
		t.Fatal("empty trace ID should return the same context")
	}
}

func TestLogErrorAppendsErrorField(t *testing.T) {
	ctx, recorded := observedContext(zapcore.ErrorLevel)
	LogError(ctx, "save failed", errors.New("quota"))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["error"]; got != "quota" {
		t.Fatalf("expected error field quota, got %v", got)
	}
}

func TestLogWarnAndInfo(t *testing.T) {
	ctx, recorded := observedContext(zapcore.InfoLevel)
	LogInfo(ctx, "info", zap.String("k", "v"))
	LogWarn(ctx, "warn")

	entries := recorded.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("unexpected levels: %v %v", entries[0].Level, entries[1].Level)
	}
}

func TestWithFieldsEnrichesLogger(t *testing.T) {
	ctx, recorded := observedContext(zapcore.InfoLevel)
	ctx = WithFields(ctx, zap.String("clientId", "c-1"))
	LogInfo(ctx, "hello")

	if got := recorded.All()[0].ContextMap()["clientId"]; got != "c-1" {
		t.Fatalf("expected clientId c-1, got %v", got)
	}
	if WithFields(ctx) != ctx {
		t.Fatal("no fields should return the same context")
	}
}

func TestLoggerFromContextFallsBackToGlobal(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly
	if LoggerFromContext(nil) != Logger() {
		t.Fatal("expected global logger for nil context")
	}
	if LoggerFromContext(context.Background()) != Logger() {
		t.Fatal("expected global logger for empty context")
	}
}
