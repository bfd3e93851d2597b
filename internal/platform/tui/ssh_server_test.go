package tui

import (
	"testing"
	"time"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	// The serve command derives its flag defaults from these values.
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath default must not be empty")
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 30m", cfg.IdleTimeout)
	}
	if cfg.HostKeyPath != "" {
		t.Errorf("HostKeyPath = %q, expected empty (auto-generated)", cfg.HostKeyPath)
	}
}
