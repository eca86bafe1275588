// Package store persists bazaar snapshots as one JSON file per fetch and
// selects the newest one for export.
//
// Filenames are <YYYYMMDD>_<SSSSS>.json where SSSSS is the zero-padded
// count of seconds since local midnight. Both parts are fixed width, so
// plain lexicographic order over the directory listing is chronological
// order; newest-selection is a string comparison, never a timestamp parse.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skydata/bazaar-data/internal/model"
)

// ErrNoSnapshots is returned by LoadNewest when the snapshot directory is
// empty or absent.
var ErrNoSnapshots = errors.New("store: no snapshots")

// Store is a directory of immutable snapshot files. Files are written once
// and never mutated or deleted here.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory itself is created
// lazily on first Write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the snapshot directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Filename computes the snapshot filename for a wall-clock instant, in
// that instant's location. The seconds-of-day counter spans 0-86399.
func Filename(now time.Time) string {
	h, m, sec := now.Clock()
	return fmt.Sprintf("%s_%05d.json", now.Format("20060102"), h*3600+m*60+sec)
}

// Write serializes snap and places it in the store under the filename
// derived from now, creating the directory (and parents) as needed. The
// file lands via write-to-temp-then-rename, so a concurrent reader never
// observes a partial snapshot. Two writes within the same wall-clock
// second collide on the name and the second rename replaces the first
// file; the naming scheme does not support sub-second runs.
func (s *Store) Write(snap *model.Snapshot, now time.Time) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	// Dot prefix keeps in-flight temp files out of LoadNewest's listing.
	tmp, err := os.CreateTemp(s.dir, ".snapshot-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp snapshot: %w", err)
	}

	path := filepath.Join(s.dir, Filename(now))
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("rename snapshot into place: %w", err)
	}

	return path, nil
}

// LoadNewest parses and returns the snapshot whose filename is the
// lexicographic maximum of the directory's entries (non-recursive; dot
// entries skipped), along with its path. Returns ErrNoSnapshots when the
// directory holds no snapshot files or does not exist.
func (s *Store) LoadNewest() (*model.Snapshot, string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", ErrNoSnapshots
		}
		return nil, "", fmt.Errorf("list snapshot dir: %w", err)
	}

	var newest string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if name > newest {
			newest = name
		}
	}
	if newest == "" {
		return nil, "", ErrNoSnapshots
	}

	path := filepath.Join(s.dir, newest)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read snapshot %s: %w", newest, err)
	}

	snap, err := model.Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("parse snapshot %s: %w", newest, err)
	}

	return snap, path, nil
}
