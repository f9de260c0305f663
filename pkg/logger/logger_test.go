package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestFromContextCarriesCheckID(t *testing.T) {
	buf := capture(t)
	ctx := WithCheckID(context.Background(), "chk-42")
	FromContext(ctx).Info("word checked")
	if !strings.Contains(buf.String(), "check_id=chk-42") {
		t.Errorf("log line %q lacks check_id", buf.String())
	}
}

func TestFromContextWithoutID(t *testing.T) {
	buf := capture(t)
	FromContext(context.Background()).Info("word checked")
	if strings.Contains(buf.String(), "check_id") {
		t.Errorf("log line %q has spurious check_id", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	buf := capture(t)
	WithComponent("pipeline").Info("ready")
	if !strings.Contains(buf.String(), "component=pipeline") {
		t.Errorf("log line %q lacks component", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
