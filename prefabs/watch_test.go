package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsMapEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, "town.tmx")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(target, []byte("<map/>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected event for %s, got %s", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event received")
	}
}

func TestWatcherDrainEmpty(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()
	if got := w.Drain(); len(got) != 0 {
		t.Fatalf("expected no events, got %v", got)
	}
	var nilWatcher *Watcher
	if nilWatcher.Drain() != nil {
		t.Fatalf("nil watcher should drain nothing")
	}
}
