package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/pentix/internal/core"
)

// FileStore keeps snapshots as JSON files. The default slot lives at the
// configured path; other slots sit next to it as <stem>-<slot><ext>.
// Snapshots carry their own grid and piece, so the game ID is not part of
// the file name and variants share slots.
type FileStore struct {
	path string
}

// NewFileStore returns a store rooted at path. A leading "~" expands to the
// home directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("storage: empty snapshot path")
	}
	path, err := core.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the file used for slot.
func (f *FileStore) Path(slot string) string {
	if slot == "" || slot == core.DefaultSlot {
		return f.path
	}
	ext := filepath.Ext(f.path)
	stem := strings.TrimSuffix(f.path, ext)
	return stem + "-" + sanitizeSlot(slot) + ext
}

// SaveSnapshot writes data to the slot's file, replacing it atomically.
func (f *FileStore) SaveSnapshot(_ string, slot string, data []byte) error {
	path := f.Path(slot)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create snapshot file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot replace snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the slot's file or returns core.ErrNoSnapshot.
func (f *FileStore) LoadSnapshot(_ string, slot string) ([]byte, error) {
	data, err := os.ReadFile(f.Path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, core.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read snapshot: %w", err)
	}
	return data, nil
}

// sanitizeSlot keeps letters, digits, '-' and '_' so SSH user names map to
// safe file names.
func sanitizeSlot(slot string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, slot)
}

var _ core.SnapshotStore = (*FileStore)(nil)
