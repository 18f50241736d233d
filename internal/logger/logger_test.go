package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestGetPreservesConfiguredLogger(t *testing.T) {
	configured, err := New("debug", "json")
	if err != nil {
		t.Fatal(err)
	}
	if configured.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("New returned level %s, want debug", configured.GetLevel())
	}

	got := Get()
	if got.GetLevel() != zerolog.DebugLevel {
		t.Errorf("Get() after New() returned level %s, configured debug is lost", got.GetLevel())
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("global level is %s, want debug", zerolog.GlobalLevel())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New("info", "xml"); err == nil {
		t.Fatal("unknown format must be rejected")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("loud", "json"); err == nil {
		t.Fatal("unknown level must be rejected")
	}
}
