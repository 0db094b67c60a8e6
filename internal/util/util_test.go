package util

import (
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestTruncateString(t *testing.T) {
	if got := TruncateString("Taurus", 10); got != "Taurus" {
		t.Errorf("short string changed: %q", got)
	}
	if got := TruncateString("Sagittarius", 3); got != "Sag..." {
		t.Errorf("unexpected truncation: %q", got)
	}
	if got := TruncateString("☀️🌙⬆️", 1); got != "☀..." {
		t.Errorf("truncation should be rune based: %q", got)
	}
}

func TestSplitCommaSeparated(t *testing.T) {
	got := SplitCommaSeparated(" https://a.example , ,https://b.example")
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := SplitCommaSeparated(""); len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerCreatesLogDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "celestia.log")
	logger, err := NewLogger("debug", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()
}
