package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ametel/snaketerm/internal/core"
	"github.com/ametel/snaketerm/internal/game"
)

// hudHeight is the number of screen rows above the playfield.
const hudHeight = 2

// Playfield glyphs.
const (
	runeHead = '●'
	runeBody = '○'
	runeFood = '■'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// fieldRect returns the bordered playfield box for a grid of the given size,
// centered in the screen area below the HUD. ok is false when the screen
// cannot hold it.
func fieldRect(dst *core.Screen, gridW, gridH int) (core.Rect, bool) {
	boxW := gridW + 2
	boxH := gridH + 2
	if dst.Width() < boxW || dst.Height() < boxH+hudHeight {
		return core.Rect{}, false
	}
	x := (dst.Width() - boxW) / 2
	y := hudHeight + (dst.Height()-hudHeight-boxH)/2
	return core.NewRect(x, y, boxW, boxH), true
}

// drawFrame renders a full game frame into the screen buffer.
func drawFrame(dst *core.Screen, snap game.Snapshot, paused bool) {
	dst.Clear()

	drawHUD(dst, snap)

	box, ok := fieldRect(dst, snap.Width, snap.Height)
	if !ok {
		drawOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	dst.DrawBox(box)

	// Grid origin inside the border
	offX := box.X + 1
	offY := box.Y + 1

	dst.SetColored(offX+snap.Food.X, offY+snap.Food.Y, runeFood, core.ColorBrightRed)

	for i, seg := range snap.Body {
		if i == 0 {
			dst.SetColored(offX+seg.X, offY+seg.Y, runeHead, core.ColorBrightGreen)
		} else {
			dst.SetColored(offX+seg.X, offY+seg.Y, runeBody, core.ColorGreen)
		}
	}

	switch {
	case snap.Phase == game.PhaseWon:
		drawOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", snap.Score))
	case snap.Phase == game.PhaseLost:
		drawOverlay(dst, "Game Over", "Press r to restart")
	case paused:
		drawOverlay(dst, "Paused", "Press p to continue")
	}
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" Snake — Score: %d  Length: %d", snap.Score, len(snap.Body))
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
