package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestWatcher_Reload(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "randy.yaml", "ui:\n  theme: default\n")

	w, err := NewWatcher(NewLoader(), path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 64)
	errs := make(chan error, 64)
	done := make(chan struct{})
	go func() {
		_ = w.Run(ctx, func(c *Config) { changes <- c }, func(e error) { errs <- e })
		close(done)
	}()

	// unrelated files in the same directory are ignored
	writeConfig(t, dir, "other.yaml", "ui:\n  theme: minimal\n")

	if err := os.WriteFile(path, []byte("ui:\n  theme: high-contrast\n"), 0o600); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}

	// a truncating write can surface an intermediate empty file first
	timeout := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case cfg := <-changes:
			reloaded = cfg.UI.Theme == "high-contrast"
		case err := <-errs:
			t.Fatalf("Unexpected reload error: %v", err)
		case <-timeout:
			t.Fatal("Timed out waiting for config reload")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_InvalidReloadReported(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "randy.yaml", "ui:\n  theme: default\n")

	w, err := NewWatcher(NewLoader(), path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error, 64)
	go func() { _ = w.Run(ctx, nil, func(e error) { errs <- e }) }()

	if err := os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0o600); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}

	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for reload error")
	}
}
