package store

import (
	"context"

	"tableflip.dev/redo/pkg/parser"
	"tableflip.dev/redo/pkg/todo"
)

// LoadCollection reads and parses the checklist file at path. The raw content
// is returned alongside so callers can snapshot it before overwriting. A
// missing or blank file yields an empty collection.
func LoadCollection(path string) (*todo.Collection, string, error) {
	content, err := Read(path)
	if err != nil {
		return nil, "", err
	}
	c, err := parser.ParseCollection(content)
	if err != nil {
		return nil, content, err
	}
	return c, content, nil
}

// SaveCollection snapshots prev into backups, when both are present, and then
// writes c to path. Old snapshots are pruned afterwards. Backup failures do
// not prevent the write and are returned only when the write succeeded.
func SaveCollection(ctx context.Context, path, prev string, c *todo.Collection, backups *Backups) error {
	next := c.String()
	var backupErr error
	if backups != nil && prev != "" && prev != next {
		_, backupErr = backups.Snapshot(path, prev)
	}
	if err := Write(path, next); err != nil {
		return err
	}
	if backups != nil && backupErr == nil {
		_, backupErr = backups.Prune(ctx, path)
	}
	return backupErr
}
