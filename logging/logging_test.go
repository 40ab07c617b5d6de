package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultIsNoop(t *testing.T) {
	if L() == nil {
		t.Fatal("L() returned nil before Init")
	}
	L().Infow("discarded", "key", 1)
}

func TestSetRoutesEntries(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))
	defer Set(nil)

	L().Infow("spawned mob", "type", "drone")
	L().Debugw("below level")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "spawned mob" {
		t.Errorf("message: %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["type"]; got != "drone" {
		t.Errorf("field type = %v", got)
	}
}

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		debug bool
	}{
		{name: "development debug", cfg: Config{Development: true, Level: "debug"}, debug: true},
		{name: "production info", cfg: Config{Level: "info"}, debug: false},
		{name: "unknown level falls back to info", cfg: Config{Level: "loud"}, debug: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := logger.Core().Enabled(zapcore.DebugLevel); got != tt.debug {
				t.Errorf("debug enabled = %v, want %v", got, tt.debug)
			}
		})
	}
}
