package logging

import "testing"

func TestNew(t *testing.T) {
	logger, err := New(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	_ = logger.Sync()
}

func TestNewVerbose(t *testing.T) {
	logger, err := New(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !logger.Core().Enabled(-1) { // zapcore.DebugLevel
		t.Fatalf("expected debug level enabled in verbose mode")
	}
}
