package nkgg

import (
	"context"
	"log/slog"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at all levels")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	custom := slog.New(nopHandler{})
	SetLogger(custom)
	if Logger() != custom {
		t.Error("Logger() did not return the configured logger")
	}

	SetLogger(nil)
	if Logger() == custom {
		t.Error("SetLogger(nil) did not restore the default logger")
	}
}
