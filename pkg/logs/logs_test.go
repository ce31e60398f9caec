package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/bookora/bookora_backend/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range tests {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}

	log := slog.New(h)
	log.Info("hello")

	if !strings.Contains(a.String(), "hello") {
		t.Error("info-level handler did not receive the record")
	}
	if b.Len() != 0 {
		t.Errorf("warn-level handler received an info record: %q", b.String())
	}

	log.Warn("trouble")
	if !strings.Contains(b.String(), "trouble") {
		t.Error("warn-level handler did not receive the warn record")
	}
}

func TestMultiHandlerEnabled(t *testing.T) {
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}

	if h.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("Enabled(info) = true, want false")
	}
	if !h.Enabled(t.Context(), slog.LevelWarn) {
		t.Error("Enabled(warn) = false, want true")
	}
}

func TestNewInstallsServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Environment = "development"
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "text"
	cfg.Logging.Output.Stdout = true
	cfg.Observability.ServiceName = "bookora_backend"

	log := New(cfg)
	if log == nil {
		t.Fatal("New returned nil")
	}
	if !log.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("debug level configured but not enabled")
	}
}
