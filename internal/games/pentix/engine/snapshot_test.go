package engine_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pentix/internal/games/pentix/engine"
)

func validSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Version:   engine.SnapshotVersion,
		Score:     12,
		HighScore: 30,
		Speed:     2,
		Current:   engine.PieceSnapshot{X: 0, Y: 0, Figure: [][]int{{1}}},
		Grid:      emptyCells(10, 20),
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	opts := engine.DefaultOptions()
	opts.Seed = 9
	c := engine.NewController(opts)
	require.NoError(t, c.Start(2))
	for range 60 {
		c.OnFallTick()
	}
	want := c.Snapshot()

	data, err := engine.EncodeSnapshot(want)
	require.NoError(t, err)
	got, err := engine.DecodeSnapshot(data)
	require.NoError(t, err)

	fresh := engine.NewController(engine.DefaultOptions())
	require.NoError(t, fresh.Restore(got))

	assert.Equal(t, want, fresh.Snapshot())
	assert.Equal(t, 2, fresh.Level())
	assert.True(t, fresh.Paused())
}

func TestRestoreKeepsRunningGameRunning(t *testing.T) {
	c := engine.NewController(engine.DefaultOptions())
	require.NoError(t, c.Start(1))

	require.NoError(t, c.Restore(validSnapshot()))

	assert.True(t, c.Running())
	assert.Equal(t, 12, c.Score())
	assert.Equal(t, 30, c.HighScore())
}

func TestRestoreRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *engine.Snapshot)
	}{
		{"future version", func(s *engine.Snapshot) { s.Version = engine.SnapshotVersion + 1 }},
		{"negative score", func(s *engine.Snapshot) { s.Score = -1 }},
		{"negative highscore", func(s *engine.Snapshot) { s.HighScore = -5 }},
		{"negative speed", func(s *engine.Snapshot) { s.Speed = -1 }},
		{"short grid", func(s *engine.Snapshot) { s.Grid = s.Grid[:19] }},
		{"narrow row", func(s *engine.Snapshot) { s.Grid[4] = s.Grid[4][:9] }},
		{"negative cell", func(s *engine.Snapshot) { s.Grid[10][3] = -2 }},
		{"empty figure", func(s *engine.Snapshot) { s.Current.Figure = nil }},
		{"ragged figure", func(s *engine.Snapshot) { s.Current.Figure = [][]int{{1, 1}, {1}} }},
		{"blank figure", func(s *engine.Snapshot) { s.Current.Figure = [][]int{{0, 0}} }},
		{"piece overlaps block", func(s *engine.Snapshot) { s.Grid[0][0] = 4 }},
		{"piece outside grid", func(s *engine.Snapshot) { s.Current.X = 10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := engine.DefaultOptions()
			opts.Seed = 1
			c := engine.NewController(opts)
			require.NoError(t, c.Start(1))
			c.OnFallTick()
			before := c.Snapshot()

			s := validSnapshot()
			tt.mutate(&s)
			err := c.Restore(s)

			assert.ErrorIs(t, err, engine.ErrMalformedSnapshot)
			assert.Equal(t, before, c.Snapshot())
			assert.True(t, c.Running())
		})
	}
}

func TestDecodeSnapshotGarbage(t *testing.T) {
	_, err := engine.DecodeSnapshot([]byte("{not json"))
	assert.ErrorIs(t, err, engine.ErrMalformedSnapshot)

	_, err = engine.DecodeSnapshot([]byte(`{"score": "lots"}`))
	assert.ErrorIs(t, err, engine.ErrMalformedSnapshot)
}

func TestRestoreLegacySnapshot(t *testing.T) {
	legacy := map[string]any{
		"score":     7,
		"highscore": 21,
		"current":   map[string]any{"x": 3, "y": 2, "figure": [][]int{{0, 5}, {5, 5}}},
		"level":     emptyCells(10, 20),
	}
	data, err := json.Marshal(legacy)
	require.NoError(t, err)

	s, err := engine.DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Version)

	c := engine.NewController(engine.DefaultOptions())
	require.NoError(t, c.Start(3))
	c.Stop()
	require.NoError(t, c.Restore(s))

	assert.Equal(t, 7, c.Score())
	assert.Equal(t, 21, c.HighScore())
	assert.Equal(t, 3, c.Level(), "legacy data carries no speed")
	assert.Equal(t, 3, c.Piece().X)
	assert.True(t, c.Paused())
}

func TestEncodeSnapshotKeys(t *testing.T) {
	data, err := engine.EncodeSnapshot(validSnapshot())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"version", "score", "highscore", "speed", "current", "level"} {
		assert.Contains(t, raw, key)
	}
}
