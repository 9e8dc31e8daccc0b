package logger

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewCarriesPrefix(t *testing.T) {
	l := New("ipc")
	if got := l.GetPrefix(); got != "ipc" {
		t.Errorf("expected prefix %q, got %q", "ipc", got)
	}
}

func TestNewInheritsGlobalLevel(t *testing.T) {
	prev := log.GetLevel()
	defer log.SetLevel(prev)

	log.SetLevel(log.DebugLevel)
	l := New("dict")
	if got := l.GetLevel(); got != log.DebugLevel {
		t.Errorf("expected level %v, got %v", log.DebugLevel, got)
	}
}

func TestNewWithConfig(t *testing.T) {
	l := NewWithConfig("cli", log.WarnLevel, false, false, log.TextFormatter)
	if got := l.GetPrefix(); got != "cli" {
		t.Errorf("expected prefix %q, got %q", "cli", got)
	}
	if got := l.GetLevel(); got != log.WarnLevel {
		t.Errorf("expected level %v, got %v", log.WarnLevel, got)
	}
}
