package logging

import (
	"testing"
)

func TestNewFallsBackToDefault(t *testing.T) {
	logger := New(Discard().Logr())
	if logger.Logr().GetSink() == nil {
		t.Fatal("expected a usable sink from a discard base")
	}
}

func TestDiscardIsSilent(t *testing.T) {
	logger := Discard()
	if logger.Logr().Enabled() {
		t.Fatal("discard logger must not be enabled")
	}
	// Must be safe to call without panicking.
	logger.Info("ignored")
	logger.Debug("ignored")
	logger.Error(nil, "ignored")
	logger.WithName("sub").WithValues("k", "v").Info("ignored")
}
