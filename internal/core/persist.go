package core

import "errors"

// ErrNoSnapshot is returned by a SnapshotStore when the requested slot holds no checkpoint.
var ErrNoSnapshot = errors.New("no saved snapshot")

// DefaultSlot is the save slot used when RuntimeConfig.Player is empty.
const DefaultSlot = "default"

// SnapshotStore keeps opaque, game-encoded checkpoints keyed by game and slot.
// Implementations must return an error wrapping ErrNoSnapshot for a missing slot.
type SnapshotStore interface {
	SaveSnapshot(gameID, slot string, data []byte) error
	LoadSnapshot(gameID, slot string) ([]byte, error)
}

// Slot returns the save slot for this configuration.
func (c RuntimeConfig) Slot() string {
	if c.Player == "" {
		return DefaultSlot
	}
	return c.Player
}
