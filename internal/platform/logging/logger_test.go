package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

type recordingEncoder struct {
	zapcore.PrimitiveArrayEncoder
	values []string
}

func (e *recordingEncoder) AppendString(v string) {
	e.values = append(e.values, v)
}

func TestEncodeSeverityMapping(t *testing.T) {
	tests := []struct {
		level    zapcore.Level
		expected string
	}{
		{zapcore.DebugLevel, "DEBUG"},
		{zapcore.InfoLevel, "INFO"},
		{zapcore.WarnLevel, "WARNING"},
		{zapcore.ErrorLevel, "ERROR"},
		{zapcore.DPanicLevel, "CRITICAL"},
		{zapcore.PanicLevel, "ALERT"},
		{zapcore.FatalLevel, "EMERGENCY"},
		{zapcore.Level(42), "DEFAULT"},
	}
	for _, tt := range tests {
		enc := &recordingEncoder{}
		encodeSeverity(tt.level, enc)
		if len(enc.values) != 1 || enc.values[0] != tt.expected {
			t.Fatalf("encodeSeverity(%v) = %v, want %s", tt.level, enc.values, tt.expected)
		}
	}
}

func TestLoggerSingletonBehavior(t *testing.T) {
	if Logger() != Logger() {
		t.Fatal("expected Logger() to return the same instance")
	}
	if Sugar() != Sugar() {
		t.Fatal("expected Sugar() to return the same instance")
	}
}

func TestErrReturnsNilOnSuccess(t *testing.T) {
	if err := Err(); err != nil {
		t.Fatalf("expected nil init error, got %v", err)
	}
}
