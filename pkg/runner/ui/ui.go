package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/redo/pkg/store"
	"tableflip.dev/redo/pkg/todo"
	"tableflip.dev/redo/pkg/tui/app"
)

// ErrNotTerminal is returned when stdin or stdout is redirected.
var ErrNotTerminal = errors.New("ui: interactive mode needs a terminal")

type UI struct {
	File    string
	Backups *store.Backups
	LogPath string
	Debug   bool

	// Diagnostics defaults to color.Error.
	Diagnostics io.Writer

	logger *slog.Logger
	// unread is set when File exists but could not be loaded.
	unread bool
}

// Do loads the file, runs the interactive program and writes the result back
// once the program exits.
func (u *UI) Do(ctx context.Context) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ErrNotTerminal
	}

	logger, closeLog, err := openLogger(u.LogPath, u.Debug)
	if err != nil {
		return err
	}
	defer closeLog()
	u.logger = logger

	c, prev, diags := u.load()
	m := app.New(c, app.WithLogger(logger))

	final, err := app.Run(ctx, m)
	if err != nil {
		u.logger.Error("program exited with error", "err", err)
		// Keep whatever state the program reached.
		diags = append(diags, fmt.Sprintf("interactive session ended early: %v", err))
	}

	diags = append(diags, final.Diagnostics()...)
	diags = append(diags, u.save(ctx, prev, final.Collection())...)
	u.report(diags)
	return nil
}

// load reads the file into a collection. Failures are diagnostics, not
// errors: the session starts with an empty collection instead.
func (u *UI) load() (*todo.Collection, string, []string) {
	var diags []string
	c, prev, err := store.LoadCollection(u.File)
	if err != nil {
		u.log().Warn("could not load lists", "file", u.File, "err", err)
		diags = append(diags, fmt.Sprintf("could not load %s: %v", u.File, err))
		c = todo.NewCollection()
		u.unread = true
	}
	u.log().Debug("loaded lists", "file", u.File, "lists", c.Len())
	return c, prev, diags
}

// save writes the collection back. A failed write is reported but does not
// fail the command. A file that could not be loaded is only replaced when the
// session added lists to it.
func (u *UI) save(ctx context.Context, prev string, c *todo.Collection) []string {
	if u.unread && c.Empty() {
		u.log().Info("left unreadable file untouched", "file", u.File)
		return []string{fmt.Sprintf("left %s untouched", u.File)}
	}
	if err := store.SaveCollection(ctx, u.File, prev, c, u.Backups); err != nil {
		u.log().Error("could not save lists", "file", u.File, "err", err)
		return []string{fmt.Sprintf("could not save %s: %v", u.File, err)}
	}
	u.log().Debug("saved lists", "file", u.File, "lists", c.Len())
	return nil
}

func (u *UI) report(diags []string) {
	if len(diags) == 0 {
		return
	}
	out := u.Diagnostics
	if out == nil {
		out = color.Error
	}
	y := color.New(color.FgHiYellow)
	for _, d := range diags {
		_, _ = y.Fprintf(out, "redo: %s\n", d)
	}
}

func (u *UI) log() *slog.Logger {
	if u.logger == nil {
		u.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return u.logger
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// openLogger returns a logger writing to path. The terminal belongs to the
// program, so an empty path discards log output.
func openLogger(path string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("ui: open log %s: %w", path, err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
