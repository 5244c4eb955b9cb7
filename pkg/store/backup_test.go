package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestBackups(t *testing.T, keep int) *Backups {
	t.Helper()
	b := NewBackups(t.TempDir(), keep)
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return b
}

func TestSnapshotListRead(t *testing.T) {
	b := newTestBackups(t, 5)
	file := filepath.Join(t.TempDir(), "lists.todo")
	ctx := context.Background()

	first, err := b.Snapshot(file, "[A]:\n")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	second, err := b.Snapshot(file, "[B]:\n")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	all, err := b.List(ctx, file)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(all))
	}
	if all[0].Key != second || all[1].Key != first {
		t.Fatalf("expected newest first, got %+v", all)
	}
	if all[0].Size != len("[B]:\n") {
		t.Fatalf("unexpected size %d", all[0].Size)
	}

	got, err := b.Read(first)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "[A]:\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestSnapshotSkipsEmptyContent(t *testing.T) {
	b := newTestBackups(t, 5)
	key, err := b.Snapshot("lists.todo", "")
	if err != nil || key != "" {
		t.Fatalf("expected no snapshot, got %q %v", key, err)
	}
}

func TestBackupsAreScopedPerFile(t *testing.T) {
	b := newTestBackups(t, 5)
	dir := t.TempDir()
	if _, err := b.Snapshot(filepath.Join(dir, "a.todo"), "[A]:\n"); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	all, err := b.List(context.Background(), filepath.Join(dir, "b.todo"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no backups for another file, got %+v", all)
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	b := newTestBackups(t, 2)
	file := filepath.Join(t.TempDir(), "lists.todo")
	ctx := context.Background()

	var keys []string
	for _, content := range []string{"[1]:\n", "[2]:\n", "[3]:\n", "[4]:\n"} {
		key, err := b.Snapshot(file, content)
		if err != nil {
			t.Fatalf("snapshot: %v", err)
		}
		keys = append(keys, key)
	}

	removed, err := b.Prune(ctx, file)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	all, err := b.List(ctx, file)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 || all[0].Key != keys[3] || all[1].Key != keys[2] {
		t.Fatalf("unexpected survivors %+v", all)
	}
}

func TestReadUnknownKey(t *testing.T) {
	b := newTestBackups(t, 2)
	if _, err := b.Read("nope-20240101T000000.000000000Z"); !errors.Is(err, ErrNoBackup) {
		t.Fatalf("expected ErrNoBackup, got %v", err)
	}
	if _, err := b.Read(""); !errors.Is(err, ErrNoBackup) {
		t.Fatalf("expected ErrNoBackup for empty key, got %v", err)
	}
}
