package show

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/redo/pkg/parser"
	"tableflip.dev/redo/pkg/store"
)

func TestShowPrintsLists(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "lists.todo")
	if err := os.WriteFile(path, []byte("[Work]:\n[x] ship\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var buf bytes.Buffer
	s := &Show{File: path, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), "[Work] - 1/1 item") || !strings.Contains(buf.String(), "[x] ship") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestShowJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.todo")
	if err := os.WriteFile(path, []byte("[Work]:\n[ ] ship\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var buf bytes.Buffer
	s := &Show{File: path, JSON: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), `"title": "Work"`) {
		t.Fatalf("unexpected json:\n%s", buf.String())
	}
}

func TestShowRejectsHeaderlessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.todo")
	if err := os.WriteFile(path, []byte("notes\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := &Show{File: path, Out: &bytes.Buffer{}}
	if err := s.Do(context.Background()); !errors.Is(err, parser.ErrNoLists) {
		t.Fatalf("expected ErrNoLists, got %v", err)
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestShowWatchReprints(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "lists.todo")
	if err := store.Write(path, "[Work]:\n"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	s := &Show{File: path, Watch: true, Out: out}
	done := make(chan error, 1)
	go func() { done <- s.Do(ctx) }()

	// Allow the watcher to subscribe before writing.
	time.Sleep(100 * time.Millisecond)
	if err := store.Write(path, "[Home]:\n[ ] sweep\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for !strings.Contains(out.String(), "[Home]") {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for reprint:\n%s", out.String())
		case <-time.After(20 * time.Millisecond):
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("do: %v", err)
	}
}
