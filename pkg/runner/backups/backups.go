package backups

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/redo/pkg/parser"
	"tableflip.dev/redo/pkg/printers"
	"tableflip.dev/redo/pkg/store"
)

type Backups struct {
	File    string
	Store   *store.Backups
	Restore string
	JSON    bool

	// Out defaults to color.Output.
	Out io.Writer
}

// Do lists the snapshots of File, or restores the one named by Restore.
func (b *Backups) Do(ctx context.Context) error {
	if b.Store == nil {
		return errors.New("backups: no backup store configured")
	}
	if b.Restore != "" {
		return b.restore(ctx)
	}

	all, err := b.Store.List(ctx, b.File)
	if err != nil {
		return err
	}
	if b.JSON {
		if all == nil {
			all = []store.Backup{}
		}
		enc := json.NewEncoder(b.out())
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}
	pp := printers.PrettyPrint{Out: b.out()}
	pp.Backups(b.File, all)
	return nil
}

// restore replaces File with a snapshot. The current content is itself
// snapshotted first so a restore can be undone.
func (b *Backups) restore(ctx context.Context) error {
	content, err := b.Store.Read(b.Restore)
	if err != nil {
		return err
	}
	c, err := parser.ParseCollection(content)
	if err != nil {
		return fmt.Errorf("backups: snapshot %s: %w", b.Restore, err)
	}
	prev, err := store.Read(b.File)
	if err != nil {
		return err
	}
	if err := store.SaveCollection(ctx, b.File, prev, c, b.Store); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(b.out(), "restored %s from %s\n", b.File, b.Restore)
	return nil
}

func (b *Backups) out() io.Writer {
	if b.Out == nil {
		return color.Output
	}
	return b.Out
}
