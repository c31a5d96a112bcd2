package follow

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchProfileReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.ini")
	if err := os.WriteFile(path, []byte("[default]\norbitDistance = 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchProfile(path, "default")
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Give the watcher a moment to be registered before writing.
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(path, []byte("[default]\norbitDistance = 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs():
		if cfg.OrbitDistance != 20 {
			t.Errorf("reloaded orbitDistance = %v, want 20", cfg.OrbitDistance)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no config arrived after the file was rewritten")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.ini")
	if err := os.WriteFile(path, []byte("[default]\norbitDistance = 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchProfile(path, "default")
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	time.Sleep(200 * time.Millisecond)

	other := filepath.Join(dir, "unrelated.txt")
	if err := os.WriteFile(other, []byte("noise"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs():
		t.Errorf("unrelated file produced a config: %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.ini")
	if err := os.WriteFile(path, []byte("[default]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchProfile(path, "default")
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
