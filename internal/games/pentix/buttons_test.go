package pentix

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/pentix/internal/core"
)

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func TestHitTest(t *testing.T) {
	buttons := layoutButtons(10, 5, 16)

	tests := []struct {
		p    core.Point
		want Command
	}{
		{core.Point{X: 10, Y: 5}, CmdEasy},
		{core.Point{X: 25, Y: 6}, CmdMedium},
		{core.Point{X: 12, Y: 8}, CmdPlayPause},
		{core.Point{X: 15, Y: 12}, CmdQuit},
		{core.Point{X: 26, Y: 5}, CmdNone},
		{core.Point{X: 9, Y: 5}, CmdNone},
		{core.Point{X: 12, Y: 13}, CmdNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, hitTest(buttons, tt.p), "point %+v", tt.p)
	}
}

func TestCommandForAction(t *testing.T) {
	tests := map[core.Action]Command{
		core.ActionNewEasy:   CmdEasy,
		core.ActionNewMedium: CmdMedium,
		core.ActionNewHard:   CmdHard,
		core.ActionPause:     CmdPlayPause,
		core.ActionStop:      CmdStop,
		core.ActionLoad:      CmdLoad,
		core.ActionSave:      CmdSave,
		core.ActionQuit:      CmdQuit,
		core.ActionLeft:      CmdNone,
	}
	for a, want := range tests {
		assert.Equal(t, want, commandForAction(a), a.String())
	}
}

func TestButtonCaption(t *testing.T) {
	b := Button{Cmd: CmdEasy, Rect: core.NewRect(0, 0, 10, 1)}
	assert.Equal(t, "[  Easy  ]", b.caption())

	b = Button{Cmd: CmdPlayPause, Rect: core.NewRect(0, 0, 8, 1)}
	assert.Equal(t, "[Play/P]", b.caption())

	b = Button{Cmd: CmdQuit, Rect: core.NewRect(0, 0, 1, 1)}
	assert.Empty(t, b.caption())
}
