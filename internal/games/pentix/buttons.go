package pentix

import (
	"strings"

	"github.com/vovakirdan/pentix/internal/core"
)

// Command is a player request triggered by a button or a key.
type Command int

const (
	CmdNone Command = iota
	CmdEasy
	CmdMedium
	CmdHard
	CmdPlayPause
	CmdStop
	CmdLoad
	CmdSave
	CmdQuit
)

// buttonOrder is the top-to-bottom order of the side panel buttons.
var buttonOrder = []Command{CmdEasy, CmdMedium, CmdHard, CmdPlayPause, CmdStop, CmdLoad, CmdSave, CmdQuit}

// Label returns the button caption.
func (c Command) Label() string {
	switch c {
	case CmdEasy:
		return "Easy"
	case CmdMedium:
		return "Medium"
	case CmdHard:
		return "Hard"
	case CmdPlayPause:
		return "Play/Pause"
	case CmdStop:
		return "Stop"
	case CmdLoad:
		return "Load"
	case CmdSave:
		return "Save"
	case CmdQuit:
		return "Quit"
	default:
		return ""
	}
}

func (c Command) String() string {
	if c == CmdNone {
		return "None"
	}
	return c.Label()
}

// commandForAction maps keyboard actions onto button commands.
func commandForAction(a core.Action) Command {
	switch a {
	case core.ActionNewEasy:
		return CmdEasy
	case core.ActionNewMedium:
		return CmdMedium
	case core.ActionNewHard:
		return CmdHard
	case core.ActionPause:
		return CmdPlayPause
	case core.ActionStop:
		return CmdStop
	case core.ActionLoad:
		return CmdLoad
	case core.ActionSave:
		return CmdSave
	case core.ActionQuit:
		return CmdQuit
	default:
		return CmdNone
	}
}

// Button is a clickable screen area bound to a command.
type Button struct {
	Cmd  Command
	Rect core.Rect
}

// layoutButtons stacks one-row buttons of width w starting at (x, y).
func layoutButtons(x, y, w int) []Button {
	buttons := make([]Button, len(buttonOrder))
	for i, cmd := range buttonOrder {
		buttons[i] = Button{Cmd: cmd, Rect: core.NewRect(x, y+i, w, 1)}
	}
	return buttons
}

// hitTest returns the command of the button under p, or CmdNone.
func hitTest(buttons []Button, p core.Point) Command {
	for _, b := range buttons {
		if b.Rect.ContainsPoint(p) {
			return b.Cmd
		}
	}
	return CmdNone
}

// caption renders the button text centred inside brackets, w cells wide.
func (b Button) caption() string {
	inner := b.Rect.W - 2
	if inner <= 0 {
		return ""
	}
	label := b.Cmd.Label()
	if len(label) > inner {
		label = label[:inner]
	}
	pad := inner - len(label)
	left := pad / 2
	return "[" + strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left) + "]"
}
