package add

import (
	"context"
	"fmt"
	"io"
	"strings"

	"tableflip.dev/redo/pkg/parser"
	"tableflip.dev/redo/pkg/printers"
	"tableflip.dev/redo/pkg/store"
)

type Add struct {
	File    string
	List    string
	Text    string
	Backups *store.Backups

	// Out defaults to the printer's color.Output.
	Out io.Writer
}

// Do appends Text to the list titled List, creating the list when missing,
// and prints the updated list.
func (n *Add) Do(ctx context.Context) error {
	title := strings.TrimSpace(n.List)
	if err := parser.ValidTitle(title); err != nil {
		return fmt.Errorf("add: %w", err)
	}

	c, prev, err := store.LoadCollection(n.File)
	if err != nil {
		// Refuse to rewrite a file we could not understand.
		return fmt.Errorf("add: %w", err)
	}

	l, ok := c.Find(title)
	if !ok {
		l = c.Append(title)
	}
	l.Add(strings.TrimSpace(n.Text))

	if err := store.SaveCollection(ctx, n.File, prev, c, n.Backups); err != nil {
		return fmt.Errorf("add: %w", err)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.List(l)
	return nil
}
