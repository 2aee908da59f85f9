package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(spec, []byte("step_size: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != spec {
			t.Fatalf("expected event for %s, got %s", spec, name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for spec change")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("expected events channel closed")
	}
}

func TestIsSpecFile(t *testing.T) {
	for path, want := range map[string]bool{
		"prefabs/player.yaml": true,
		"levels/arena.JSON":   true,
		"a.yml":               true,
		"assets/tile.png":     false,
	} {
		if got := isSpecFile(path); got != want {
			t.Fatalf("isSpecFile(%q) = %v, want %v", path, got, want)
		}
	}
}
