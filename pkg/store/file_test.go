package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadMissingFileIsEmpty(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.todo"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty content, got %q", got)
	}
}

func TestWriteReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "lists.todo")

	if err := Write(path, "[A]:\n"); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := Write(path, "[B]:\n[x] done\n"); err != nil {
		t.Fatalf("second write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "[B]:\n[x] done\n" {
		t.Fatalf("unexpected content %q", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files cleaned up, found %d entries", len(entries))
	}
}

func TestWriteKeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.todo")
	if err := os.WriteFile(path, []byte("[A]:\n"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Write(path, "[B]:\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600, got %o", perm)
	}
}
