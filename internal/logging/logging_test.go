package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("saved skill", "name", "deploy")

	out := buf.String()
	if !strings.Contains(out, "INFO") {
		t.Errorf("output missing level label: %q", out)
	}
	if !strings.Contains(out, "saved skill") || !strings.Contains(out, "name=deploy") {
		t.Errorf("output missing message or attr: %q", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("saved skill", "name", "deploy")

	out := buf.String()
	if !strings.Contains(out, `"msg":"saved skill"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: FormatText, Output: &buf})

	logger.Info("should be dropped")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info record leaked through warn filter: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		v    int
		want slog.Level
	}{
		{0, slog.LevelInfo},
		{1, slog.LevelDebug},
		{2, slog.LevelDebug - 4},
		{5, slog.LevelDebug - 4},
	}
	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.v); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)
	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("app", "agentdeck")}).WithGroup("sync"))

	logger.Info("done", "agent", "claude")

	out := buf.String()
	if !strings.Contains(out, "app=agentdeck") {
		t.Errorf("pre-bound attr missing: %q", out)
	}
	if !strings.Contains(out, "sync.agent=claude") {
		t.Errorf("grouped attr missing: %q", out)
	}
}

func TestMultiHandler_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	logger := slog.New(NewMultiHandler(
		NewHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	))

	logger.Info("hello")

	if !strings.Contains(a.String(), "hello") {
		t.Error("text handler did not receive record")
	}
	if !strings.Contains(b.String(), `"msg":"hello"`) {
		t.Error("json handler did not receive record")
	}
}

func TestFromContext_Fallback(t *testing.T) {
	logger := Default()
	ctx := NewContext(t.Context(), logger)
	if FromContext(ctx) != logger {
		t.Error("FromContext should return the stored logger")
	}
	if FromContext(t.Context()) == nil {
		t.Error("FromContext should fall back to slog default")
	}
}
