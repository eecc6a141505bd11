// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slogger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf)))

	slogger.Warn("service restarted",
		"service", "catalog-watcher",
		"attempt", 3,
		"backoff", 2*time.Second,
		"healthy", false,
	)

	output := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"message":"service restarted"`,
		`"service":"catalog-watcher"`,
		`"attempt":3`,
		`"healthy":false`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s: %s", want, output)
		}
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewSlogHandlerWithLogger(NewTestLogger(&buf)).
		WithAttrs([]slog.Attr{slog.String("layer", "api")}).
		WithGroup("supervisor")

	slog.New(h).Info("started", "name", "http")

	output := buf.String()
	if !strings.Contains(output, `"supervisor.layer":"api"`) {
		t.Errorf("expected grouped pre-configured attr: %s", output)
	}
	if !strings.Contains(output, `"supervisor.name":"http"`) {
		t.Errorf("expected grouped record attr: %s", output)
	}
}

func TestSlogHandler_NestedGroupAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf))).
		Info("event", slog.Group("req", slog.String("method", "GET")))

	if !strings.Contains(buf.String(), `"req.method":"GET"`) {
		t.Errorf("expected nested group key: %s", buf.String())
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandlerWithLogger(zerolog.New(nil).Level(zerolog.WarnLevel))
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("info should be disabled for warn logger")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("error should be enabled for warn logger")
	}
}

func TestSlogHandler_WithGroupEmpty(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler()
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewSlogLogger(t *testing.T) {
	t.Parallel()

	if NewSlogLogger() == nil {
		t.Fatal("NewSlogLogger returned nil")
	}
}
