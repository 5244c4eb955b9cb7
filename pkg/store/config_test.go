package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REDO_CONFIG_PATH", "")
	t.Setenv("HOME", t.TempDir())
	homedir.DisableCache = true

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	home, _ := homedir.Dir()
	if want := filepath.Join(home, ".redo.todo"); cfg.FilePath() != want {
		t.Fatalf("path = %q, want %q", cfg.FilePath(), want)
	}
	if want := filepath.Join(home, ".cache", "redo", "backups"); cfg.BackupPath() != want {
		t.Fatalf("backups = %q, want %q", cfg.BackupPath(), want)
	}
	if cfg.Keep() != DefaultKeep {
		t.Fatalf("keep = %d", cfg.Keep())
	}
	if cfg.LogPath() != "" {
		t.Fatalf("log = %q", cfg.LogPath())
	}
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("REDO_CONFIG_PATH", dir)
	t.Setenv("REDO_KEEP", "3")
	homedir.DisableCache = true

	body := "path: /tmp/work.todo\nlog: /tmp/redo.log\nkeep: 9\n"
	if err := os.WriteFile(filepath.Join(dir, ".redo.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FilePath() != "/tmp/work.todo" {
		t.Fatalf("path = %q", cfg.FilePath())
	}
	if cfg.LogPath() != "/tmp/redo.log" {
		t.Fatalf("log = %q", cfg.LogPath())
	}
	if cfg.Keep() != 3 {
		t.Fatalf("expected env to override keep, got %d", cfg.Keep())
	}
	if ConfigSource(cfg) == "" {
		t.Fatalf("expected config source to be recorded")
	}
}
