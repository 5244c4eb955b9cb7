package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/redo/pkg/store"
)

type Info struct {
	Config store.Config

	// Out defaults to color.Output.
	Out io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("REDO_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "REDO_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "REDO_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if src := store.ConfigSource(n.Config); src != "" {
		_, _ = fmt.Fprintln(out, "Config file: ", src)
	} else {
		_, _ = fmt.Fprintln(out, "Config file:  none, using defaults")
	}
	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.FilePath())
	_, _ = fmt.Fprintln(out, "Config.backups: ", n.Config.BackupPath())
	_, _ = fmt.Fprintln(out, "Config.keep: ", n.Config.Keep())
	if n.Config.LogPath() != "" {
		_, _ = fmt.Fprintln(out, "Config.log: ", n.Config.LogPath())
	}

	_, _ = fmt.Fprintf(out, "Lists:\n")
	c, _, err := store.LoadCollection(n.Config.FilePath())
	if err != nil {
		_, _ = fmt.Fprintf(out, "  %s\n", err)
		return nil
	}
	if c.Empty() {
		_, _ = fmt.Fprintf(out, "  %s\n", "no lists")
		return nil
	}
	for _, l := range c.Lists {
		_, _ = fmt.Fprintf(out, "  %s %d/%d\n", l.Header(), l.Completed(), l.Len())
	}

	backups, err := store.NewBackups(n.Config.BackupPath(), n.Config.Keep()).List(ctx, n.Config.FilePath())
	if err == nil {
		_, _ = fmt.Fprintf(out, "Backups: %d\n", len(backups))
	}
	return nil
}
