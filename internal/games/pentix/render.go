package pentix

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pentix/internal/config"
	"github.com/vovakirdan/pentix/internal/core"
	"github.com/vovakirdan/pentix/internal/games/pentix/engine"
)

const (
	cellWidth  = 2  // Screen columns per grid cell
	panelWidth = 16 // Side panel width
	panelGap   = 2  // Columns between board and panel
)

// layout holds the screen positions computed from the terminal size.
type layout struct {
	board    core.Rect // Board including its border
	panelX   int
	buttonsY int
	statusY  int
	tooSmall bool
	minW     int
	minH     int
}

// computeLayout centres the board and side panel on a w x h screen.
func computeLayout(w, h, gridW, gridH int) layout {
	boardW := gridW*cellWidth + 2
	boardH := gridH + 2
	totalW := boardW + panelGap + panelWidth
	totalH := boardH + 1 // status line

	l := layout{minW: totalW, minH: max(totalH, len(buttonOrder)+8)}
	if w < l.minW || h < l.minH {
		l.tooSmall = true
		return l
	}

	x := (w - totalW) / 2
	y := (h - totalH) / 2
	l.board = core.NewRect(x, y, boardW, boardH)
	l.panelX = l.board.Right() + panelGap
	l.buttonsY = y + 7
	l.statusY = l.board.Bottom()
	return l
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.view.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderBoard(dst)
	g.renderPanel(dst)
	g.renderOverlay(dst)
	g.renderStatus(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.view.minW, g.view.minH))
}

// renderBoard draws the border, settled blocks and the falling piece.
func (g *Game) renderBoard(dst *core.Screen) {
	b := g.view.board
	dst.DrawBoxColor(b, core.ColorGray)

	grid := g.ctrl.Grid()
	for y := range grid.Height() {
		for x := range grid.Width() {
			g.drawCell(dst, x, y, grid.At(x, y))
		}
	}

	if g.ctrl.State() == engine.StateStopped {
		return
	}
	p := g.ctrl.Piece()
	for i, row := range p.Cells() {
		for j, v := range row {
			if v != 0 && p.Y+i >= 0 {
				g.drawCell(dst, p.X+j, p.Y+i, v)
			}
		}
	}
}

// drawCell draws grid cell (x, y) holding value v.
func (g *Game) drawCell(dst *core.Screen, x, y, v int) {
	px := g.view.board.X + 1 + x*cellWidth
	py := g.view.board.Y + 1 + y
	if v == 0 {
		dst.SetWithColor(px, py, ' ', core.ColorDefault)
		dst.SetWithColor(px+1, py, '·', core.ColorGray)
		return
	}
	c := core.BlockColor(v)
	dst.SetWithColor(px, py, '█', c)
	dst.SetWithColor(px+1, py, '█', c)
}

// renderPanel draws the title, counters and buttons.
func (g *Game) renderPanel(dst *core.Screen) {
	x := g.view.panelX
	y := g.view.board.Y

	dst.DrawTextColor(x, y, strings.ToUpper(g.Title()), core.ColorBrightCyan)

	level := g.ctrl.Level()
	rows := []struct {
		label string
		value string
	}{
		{"Score", fmt.Sprint(g.ctrl.Score())},
		{"Highscore", fmt.Sprint(g.ctrl.HighScore())},
		{"Level", fmt.Sprintf("%d %s", level, config.PresetForLevel(level).Title())},
		{"Lines", fmt.Sprint(g.ctrl.LinesCleared())},
	}
	for i, r := range rows {
		dst.DrawTextColor(x, y+2+i, r.label, core.ColorGray)
		dst.DrawText(x+panelWidth-len(r.value), y+2+i, r.value)
	}

	for _, b := range g.buttons {
		c := core.ColorWhite
		switch {
		case b.Cmd == g.hover:
			c = core.ColorBrightYellow
		case (b.Cmd == CmdSave || b.Cmd == CmdLoad) && g.runtime.Saves == nil:
			c = core.ColorGray
		}
		dst.DrawTextColor(b.Rect.X, b.Rect.Y, b.caption(), c)
	}
}

// renderOverlay writes the state banner across the middle of the board.
func (g *Game) renderOverlay(dst *core.Screen) {
	var line1, line2 string
	switch g.ctrl.State() {
	case engine.StatePaused:
		line1, line2 = "PAUSED", "p to resume"
	case engine.StateGameOver:
		line1, line2 = "GAME OVER", "1-3 new game"
	case engine.StateStopped:
		line1, line2 = "STOPPED", "1-3 new game"
	default:
		return
	}

	b := g.view.board
	inner := b.W - 2
	midY := b.Y + b.H/2 - 1
	for i, text := range []string{line1, line2} {
		pad := max(inner-len(text), 0)
		left := pad / 2
		banner := strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
		dst.DrawTextColor(b.X+1, midY+i, banner, core.ColorBrightWhite)
	}
}

// renderStatus draws the transient message line under the board.
func (g *Game) renderStatus(dst *core.Screen) {
	if g.status == "" {
		return
	}
	dst.DrawTextColor(g.view.board.X, g.view.statusY, g.status, core.ColorYellow)
}
