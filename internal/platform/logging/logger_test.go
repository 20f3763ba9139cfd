package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerWritesFieldsAndErrors(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core)).With("component", "scraper")

	logger.Warn("scrape attempt failed", "attempt", 1, "error", errors.New("timeout"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "scraper" {
		t.Fatalf("expected component field, got %v", fields["component"])
	}
	if fields["attempt"] != int64(1) {
		t.Fatalf("expected attempt=1, got %v", fields["attempt"])
	}
	if fields["error"] != "timeout" {
		t.Fatalf("expected error field, got %v", fields["error"])
	}
}

func TestLoggerMirrorReceivesInheritedArgs(t *testing.T) {
	core, _ := observer.New(LevelInfo)
	logger := FromZap(zap.New(core)).With("job_id", "job_1")

	var gotMsg string
	var gotArgs []any
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		gotMsg = msg
		gotArgs = args
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.InfoContext(context.Background(), "job completed", "total", 3)
	logger.Debug("below level is not mirrored")

	if gotMsg != "job completed" {
		t.Fatalf("unexpected mirrored message %q", gotMsg)
	}
	if len(gotArgs) != 4 || gotArgs[0] != "job_id" || gotArgs[2] != "total" {
		t.Fatalf("unexpected mirrored args %v", gotArgs)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
}
