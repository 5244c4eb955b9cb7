package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchEmitsFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.todo")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := Write(path, "[Inbox]:\n[ ] hello world\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventWatchError {
				continue
			}
			if evt.Path != path {
				t.Fatalf("expected path %q, got %q", path, evt.Path)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for file change event")
		}
	}
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lists.todo")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	if err := Write(filepath.Join(dir, "other.todo"), "[Other]:\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Type == EventFileChanged {
			t.Fatalf("unexpected event for sibling file: %+v", evt)
		}
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.todo")
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}
