package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultPath    = "~/.redo.todo"
	DefaultBackups = "~/.cache/redo/backups"
	DefaultKeep    = 20
)

type Config interface {
	// FilePath is the checklist file opened when no file argument is given.
	FilePath() string
	// BackupPath is the diskv directory holding snapshots.
	BackupPath() string
	// Keep is the number of snapshots retained per file.
	Keep() int
	// LogPath is where the TUI writes its log. Empty discards logs.
	LogPath() string
}

// LoadConfig resolves configuration from .redo.yaml, REDO_* environment
// variables and the built-in defaults.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("backups", DefaultBackups)
	v.SetDefault("keep", DefaultKeep)
	v.SetDefault("log", "")
	v.SetConfigName(".redo") // .yaml is implicit
	v.SetEnvPrefix("REDO")
	v.AutomaticEnv()

	if override := os.Getenv("REDO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &fileConfig{Retain: v.GetInt("keep")}
	var err error
	if cfg.Path, err = expand(v.GetString("path")); err != nil {
		return nil, err
	}
	if cfg.Backups, err = expand(v.GetString("backups")); err != nil {
		return nil, err
	}
	if cfg.Log, err = expand(v.GetString("log")); err != nil {
		return nil, err
	}
	if cfg.Retain < 1 {
		cfg.Retain = 1
	}
	cfg.Source = v.ConfigFileUsed()
	return cfg, nil
}

func expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("store: expand %q: %w", path, err)
	}
	return p, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Backups string `json:"backups"`
	Retain  int    `json:"keep"`
	Log     string `json:"log,omitempty"`
	Source  string `json:"source,omitempty"`
}

func (f *fileConfig) FilePath() string   { return f.Path }
func (f *fileConfig) BackupPath() string { return f.Backups }
func (f *fileConfig) Keep() int          { return f.Retain }
func (f *fileConfig) LogPath() string    { return f.Log }

// ConfigSource returns the config file viper read, or "" when defaults and
// environment were used.
func ConfigSource(cfg Config) string {
	if f, ok := cfg.(*fileConfig); ok {
		return f.Source
	}
	return ""
}
