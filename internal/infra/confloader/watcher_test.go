package confloader

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cli.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: table\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	var notified atomic.Int64
	w.OnChange(func(string) { notified.Add(1) })

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	w.StartAsync()
	defer w.Stop()

	// Give the watcher a moment to arm, then touch the file.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("output:\n  format: json\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for notified.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("watcher did not notify within deadline")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestWatcher_StopIsClean(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	w.StartAsync()

	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}
