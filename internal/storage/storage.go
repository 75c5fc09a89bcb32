package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// extensions the uploads directory has ever held. Deleting a listing
// removes its current file plus any stale sibling left over from the
// pre-transcode format.
var knownExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Store owns the uploads directory. Generated names are collision
// resistant by construction (millisecond timestamp plus random suffix),
// so concurrent writers need no further coordination.
type Store struct {
	dir string
}

// New creates the uploads directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// NewName returns a fresh unique filename preserving the given extension.
func (s *Store) NewName(ext string) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, strings.ToLower(ext))
}

// Path resolves a bare filename inside the uploads directory.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

// Remove deletes a single file, best effort. Missing files are fine;
// other failures are logged and swallowed.
func (s *Store) Remove(name string) {
	err := os.Remove(s.Path(name))
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove upload file", "file", name, "error", err)
	}
}

// RemoveWithSiblings deletes the file plus any sibling sharing its base
// name under another known extension.
func (s *Store) RemoveWithSiblings(name string) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	s.Remove(base)
	for _, sib := range knownExtensions {
		if sib == ext {
			continue
		}
		s.Remove(stem + sib)
	}
}

// SweepOrphans removes every file in the uploads directory that is not in
// the keep set. It is the single garbage-collection point for artifacts
// left behind by failed pipeline runs or old deployments.
func (s *Store) SweepOrphans(keep []string) (int, error) {
	valid := make(map[string]bool, len(keep))
	for _, name := range keep {
		valid[filepath.Base(name)] = true
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read uploads directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || valid[entry.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			slog.Warn("failed to sweep orphan file", "file", entry.Name(), "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}
