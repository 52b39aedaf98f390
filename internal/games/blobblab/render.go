package blobblab

import (
	"fmt"

	platformcore "github.com/vovakirdan/blobblab/internal/core"
	"github.com/vovakirdan/blobblab/internal/games/blobblab/core"
)

const (
	cellWidth    = 2  // Terminal columns per board cell
	hudHeight    = 3  // Title, score line, status line
	previewWidth = 12 // Side panel with upcoming pieces
	previewGap   = 2
)

// boardExtent returns the size of the framed board in terminal cells.
func boardExtent(size int) (w, h int) {
	return size*cellWidth + 2, size + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderError(dst)
		return
	}

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardExtent(g.size)

	// Leave room for the preview panel when the terminal is wide enough
	showPreview := g.preview > 0 && g.screenW >= boardW+previewGap+previewWidth
	totalW := boardW
	if showPreview {
		totalW += previewGap + previewWidth
	}

	boardX := (g.screenW - totalW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	if showPreview {
		g.renderPreview(dst, boardX+boardW+previewGap, boardY, boardH)
	}
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	boardW, boardH := boardExtent(g.size)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, please resize terminal", boardW, boardH+hudHeight+1))
}

// renderError explains why the game could not start.
func (g *Game) renderError(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Cannot start Blobblab")
	dst.DrawTextCentered(y, g.err.Error())
	dst.DrawTextCentered(y+2, "Fix the configuration and press R")
}

// renderHUD draws the title, score and turn counter.
func (g *Game) renderHUD(dst *platformcore.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, platformcore.ColorBrightWhite)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.session.Score()))

	turnsStr := fmt.Sprintf("Turns: %d", g.session.Turns())
	turnsX := max(boardX+boardW-len(turnsStr), boardX)
	dst.DrawText(turnsX, 1, turnsStr)

	if g.flashTicks > 0 {
		lines := "line"
		if g.lastTurn.LinesCleared > 1 {
			lines = "lines"
		}
		msg := fmt.Sprintf("+%d  %d %s cleared", g.lastTurn.ScoreDelta, g.lastTurn.LinesCleared, lines)
		dst.DrawTextColored(boardX+(boardW-len(msg))/2, 2, msg, platformcore.ColorBrightYellow)
	}
}

// renderBoard draws the frame and every occupied cell.
// Each cell is two columns wide; a cell is trimmed with half and quadrant
// blocks on the sides that face a different shape, so neighbours stay apart.
func (g *Game) renderBoard(dst *platformcore.Screen, boardX, boardY int) {
	snap := g.session.Snapshot()
	boardW, boardH := boardExtent(g.size)

	dst.DrawBoxColored(platformcore.NewRect(boardX, boardY, boardW, boardH), platformcore.ColorGray)

	for row := 0; row < snap.Size; row++ {
		for col := 0; col < snap.Size; col++ {
			x := boardX + 1 + col*cellWidth
			y := boardY + 1 + row

			cell := snap.Cell(row, col)
			if !cell.Occupied {
				dst.SetColored(x, y, '·', platformcore.ColorGray)
				continue
			}

			left, right := cellGlyphs(
				snap.SameShape(row, col, row, col+1),
				snap.SameShape(row, col, row+1, col),
			)
			color := tagColor(cell.Tag)
			dst.SetColored(x, y, left, color)
			dst.SetColored(x+1, y, right, color)
		}
	}
}

// cellGlyphs picks the two runes for an occupied cell given whether its
// right and lower neighbours belong to the same shape.
func cellGlyphs(sameRight, sameDown bool) (left, right rune) {
	switch {
	case sameRight && sameDown:
		return '█', '█'
	case sameRight:
		return '▀', '▀'
	case sameDown:
		return '█', '▌'
	default:
		return '▀', '▘'
	}
}

// tagColor maps a shape tag to a screen color.
func tagColor(tag string) platformcore.Color {
	if c, ok := platformcore.ParseColor(tag); ok && c != platformcore.ColorDefault {
		return c
	}
	return platformcore.ColorWhite
}

// renderPreview draws the upcoming pieces in a side panel.
func (g *Game) renderPreview(dst *platformcore.Screen, x, y, height int) {
	dst.DrawBoxColored(platformcore.NewRect(x, y, previewWidth, height), platformcore.ColorGray)
	dst.DrawText(x+2, y, " Next ")

	py := y + 1
	for _, p := range g.session.Preview(g.preview) {
		fp := p.Footprint
		if py+fp.Rows() > y+height-1 {
			break
		}

		color := tagColor(p.Tag)
		px := x + (previewWidth-fp.Cols()*cellWidth)/2
		for _, off := range fp.Offsets() {
			left, right := previewGlyphs(fp, off)
			dst.SetColored(px+off.Col*cellWidth, py+off.Row, left, color)
			dst.SetColored(px+off.Col*cellWidth+1, py+off.Row, right, color)
		}
		py += fp.Rows() + 1
	}
}

// previewGlyphs draws a footprint cell the same way the board draws shapes.
func previewGlyphs(fp core.Footprint, off core.Coord) (left, right rune) {
	return cellGlyphs(fp.Filled(off.Row, off.Col+1), fp.Filled(off.Row+1, off.Col))
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.session.GameOver() {
		scoreStr := fmt.Sprintf("Score: %d", g.session.Score())
		turnsStr := fmt.Sprintf("Turns: %d", g.session.Turns())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, turnsStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := platformcore.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Swipe | X: Give up | P: Pause | R: Restart | Q: Quit"
}
