package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pentix/internal/core"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "saving.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	if err := store.SaveSnapshot("pentix", core.DefaultSlot, []byte(`{"score":5}`)); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default slot not written to %s: %v", path, err)
	}

	data, err := store.LoadSnapshot("pentix", core.DefaultSlot)
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if !bytes.Equal(data, []byte(`{"score":5}`)) {
		t.Errorf("LoadSnapshot() = %s", data)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the snapshot file, found %d entries", len(entries))
	}
}

func TestFileStoreMissing(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "saving.json"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	_, err = store.LoadSnapshot("pentix", core.DefaultSlot)
	if !errors.Is(err, core.ErrNoSnapshot) {
		t.Errorf("LoadSnapshot() = %v, want ErrNoSnapshot", err)
	}
}

func TestFileStoreSlotPaths(t *testing.T) {
	store, err := NewFileStore("/var/saves/saving.json")
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	tests := []struct {
		slot string
		want string
	}{
		{"", "/var/saves/saving.json"},
		{core.DefaultSlot, "/var/saves/saving.json"},
		{"alice", "/var/saves/saving-alice.json"},
		{"../etc/passwd", "/var/saves/saving-___etc_passwd.json"},
	}
	for _, tt := range tests {
		if got := store.Path(tt.slot); got != tt.want {
			t.Errorf("Path(%q) = %q, want %q", tt.slot, got, tt.want)
		}
	}
}

func TestFileStoreSlotsAreIndependent(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "saving.json"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	if err := store.SaveSnapshot("pentix", "alice", []byte("a")); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}
	if _, err := store.LoadSnapshot("pentix", core.DefaultSlot); !errors.Is(err, core.ErrNoSnapshot) {
		t.Errorf("default slot should be empty, got %v", err)
	}
	data, err := store.LoadSnapshot("pentix", "alice")
	if err != nil || string(data) != "a" {
		t.Errorf("LoadSnapshot(alice) = %q, %v", data, err)
	}
}

func TestNewFileStoreEmptyPath(t *testing.T) {
	if _, err := NewFileStore(""); err == nil {
		t.Error("expected error for empty path")
	}
}
