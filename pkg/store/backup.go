package store

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNoBackup is returned when a snapshot key is unknown.
var ErrNoBackup = errors.New("store: no such backup")

// layoutStamp sorts lexically in time order and never contains the key
// separator.
const layoutStamp = "20060102T150405.000000000Z"

// Backup describes one stored snapshot.
type Backup struct {
	Key   string    `json:"key"`
	Taken time.Time `json:"taken"`
	Size  int       `json:"size"`
}

// Backups keeps timestamped copies of checklist files in a diskv store.
// Keys are `<file token>-<timestamp>`, laid out on disk as
// <base>/<file token>/<timestamp>.
type Backups struct {
	d    *diskv.Diskv
	keep int
	now  func() time.Time
}

// NewBackups opens the snapshot store rooted at base, retaining keep
// snapshots per file.
func NewBackups(base string, keep int) *Backups {
	if keep < 1 {
		keep = 1
	}
	return &Backups{
		d: diskv.New(diskv.Options{
			BasePath:          base,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		keep: keep,
		now:  time.Now,
	}
}

// Snapshot stores content as the newest backup of file and returns its key.
// Empty content is not worth keeping and yields an empty key.
func (b *Backups) Snapshot(file, content string) (string, error) {
	if content == "" {
		return "", nil
	}
	token, err := fileToken(file)
	if err != nil {
		return "", err
	}
	key := token + "-" + b.now().UTC().Format(layoutStamp)
	if err := b.d.WriteString(key, content); err != nil {
		return "", fmt.Errorf("store: snapshot %s: %w", file, err)
	}
	return key, nil
}

// List returns the snapshots of file, newest first.
func (b *Backups) List(ctx context.Context, file string) ([]Backup, error) {
	token, err := fileToken(file)
	if err != nil {
		return nil, err
	}
	var out []Backup
	for key := range b.d.KeysPrefix(token+"-", ctx.Done()) {
		pk := keyToPathTransform(key)
		taken, err := time.Parse(layoutStamp, pk.FileName)
		if err != nil {
			continue
		}
		val, err := b.d.Read(key)
		if err != nil {
			return nil, fmt.Errorf("store: read backup %s: %w", key, err)
		}
		out = append(out, Backup{Key: key, Taken: taken, Size: len(val)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key > out[j].Key })
	return out, nil
}

// Read returns the content stored under key.
func (b *Backups) Read(key string) (string, error) {
	if key == "" || !strings.Contains(key, "-") || !b.d.Has(key) {
		return "", fmt.Errorf("%w: %q", ErrNoBackup, key)
	}
	val, err := b.d.Read(key)
	if err != nil {
		return "", fmt.Errorf("store: read backup %s: %w", key, err)
	}
	return string(val), nil
}

// Prune drops the oldest snapshots of file beyond the retention limit and
// reports how many were removed.
func (b *Backups) Prune(ctx context.Context, file string) (int, error) {
	all, err := b.List(ctx, file)
	if err != nil {
		return 0, err
	}
	if len(all) <= b.keep {
		return 0, nil
	}
	removed := 0
	for _, old := range all[b.keep:] {
		if err := b.d.Erase(old.Key); err != nil {
			return removed, fmt.Errorf("store: erase backup %s: %w", old.Key, err)
		}
		removed++
	}
	return removed, nil
}

// fileToken names the backup bucket of a file. It hashes the absolute path so
// the token is stable and free of path separators.
func fileToken(file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", fmt.Errorf("store: resolve %s: %w", file, err)
	}
	sum := md5.Sum([]byte(abs))
	return fmt.Sprintf("%x", sum[:8]), nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
