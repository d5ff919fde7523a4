package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/refresh-arcade/internal/config"
)

func TestResolveHostKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys", "host_key")

	got, err := resolveHostKey(path)
	if err != nil {
		t.Fatalf("resolveHostKey() error = %v", err)
	}
	if got != path {
		t.Errorf("resolveHostKey() = %q, expected %q", got, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("resolveHostKey() should create %s", filepath.Dir(path))
	}
}

func TestResolveHostKeyDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKey("")
	if err != nil {
		t.Fatalf("resolveHostKey() error = %v", err)
	}
	if expected := filepath.Join(home, ".funrefresh", "host_key"); got != expected {
		t.Errorf("resolveHostKey() = %q, expected %q", got, expected)
	}
}

func TestNewSSHServerRejectsBadConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Refresh = config.DefaultRefreshConfig()
	cfg.Refresh.TickRate = 0

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("NewSSHServer() with zero tick rate should fail")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected %q", cfg.Address, ":23234")
	}
	if err := cfg.Refresh.Validate(); err != nil {
		t.Errorf("default refresh config should validate, got %v", err)
	}
}
