package engine

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SnapshotVersion is the schema version written by EncodeSnapshot.
// Version 0 is the unversioned layout of the original saving.json files.
const SnapshotVersion = 1

// ErrMalformedSnapshot marks checkpoint data that cannot be decoded or does
// not fit the running game.
var ErrMalformedSnapshot = errors.New("engine: malformed snapshot")

// Snapshot is the persisted checkpoint. The JSON keys keep the historical
// names: "level" is the grid and "current" the falling piece.
type Snapshot struct {
	Version   int           `json:"version"`
	Score     int           `json:"score"`
	HighScore int           `json:"highscore"`
	Speed     int           `json:"speed,omitempty"` // difficulty level, 0 when unknown
	Current   PieceSnapshot `json:"current"`
	Grid      [][]int       `json:"level"`
}

// PieceSnapshot is the falling piece inside a Snapshot.
type PieceSnapshot struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Figure [][]int `json:"figure"`
}

// EncodeSnapshot serializes s as JSON.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("engine: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses JSON checkpoint data. Syntax and type errors are
// reported as ErrMalformedSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return s, nil
}

// Validate checks s against a width x height grid.
func (s Snapshot) Validate(width, height int) error {
	if s.Version < 0 || s.Version > SnapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedSnapshot, s.Version)
	}
	if s.Score < 0 || s.HighScore < 0 {
		return fmt.Errorf("%w: negative score", ErrMalformedSnapshot)
	}
	if s.Speed < 0 {
		return fmt.Errorf("%w: negative speed %d", ErrMalformedSnapshot, s.Speed)
	}
	if len(s.Grid) != height {
		return fmt.Errorf("%w: grid has %d rows, want %d", ErrMalformedSnapshot, len(s.Grid), height)
	}
	for y, row := range s.Grid {
		if len(row) != width {
			return fmt.Errorf("%w: grid row %d has %d cells, want %d", ErrMalformedSnapshot, y, len(row), width)
		}
	}
	return validateFigure(s.Current.Figure)
}

func validateFigure(fig [][]int) error {
	if len(fig) == 0 || len(fig[0]) == 0 {
		return fmt.Errorf("%w: empty figure", ErrMalformedSnapshot)
	}
	for i, row := range fig {
		if len(row) != len(fig[0]) {
			return fmt.Errorf("%w: figure row %d is ragged", ErrMalformedSnapshot, i)
		}
		for _, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: negative figure cell", ErrMalformedSnapshot)
			}
		}
	}
	if countOccupied(fig) == 0 {
		return fmt.Errorf("%w: figure has no blocks", ErrMalformedSnapshot)
	}
	return nil
}

// Snapshot captures the controller's persistent state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Version:   SnapshotVersion,
		Score:     c.score,
		HighScore: c.highScore,
		Speed:     c.level,
		Current: PieceSnapshot{
			X:      c.piece.X,
			Y:      c.piece.Y,
			Figure: c.piece.Cells(),
		},
		Grid: c.grid.Cells(),
	}
}

// Restore replaces score, highscore, grid and piece with the checkpoint.
// It is all-or-nothing: on error the controller is unchanged. A restored
// game that was not running comes back paused.
func (c *Controller) Restore(s Snapshot) error {
	if err := s.Validate(c.grid.Width(), c.grid.Height()); err != nil {
		return err
	}
	grid, err := GridFromCells(s.Grid)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	piece := NewPiece(s.Current.Figure, s.Current.X, s.Current.Y)
	if grid.IsCollision(piece.cells, piece.X, piece.Y) {
		return fmt.Errorf("%w: piece overlaps the grid", ErrMalformedSnapshot)
	}

	c.grid = grid
	c.piece = piece
	c.score = s.Score
	c.highScore = s.HighScore
	if s.Version >= 1 && s.Speed > 0 {
		c.level = s.Speed
	}
	if c.state != StateRunning {
		c.state = StatePaused
	}
	return nil
}
