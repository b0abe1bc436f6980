package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Layout constants
const (
	hudHeight  = 2 // score line + separator
	helpHeight = 1

	minScreenW = snake.GridWidth
	minScreenH = hudHeight + snake.GridHeight + helpHeight
)

// palette maps core.Color to lipgloss styles bound to one renderer, so SSH
// sessions get colors matching the remote terminal.
type palette map[core.Color]lipgloss.Style

func newPalette(r *lipgloss.Renderer) palette {
	codes := map[core.Color]string{
		core.ColorRed:     "1",
		core.ColorGreen:   "2",
		core.ColorYellow:  "3",
		core.ColorBlue:    "4",
		core.ColorMagenta: "5",
		core.ColorCyan:    "6",
		core.ColorWhite:   "7",
		core.ColorGray:    "245",
	}

	p := palette{core.ColorDefault: r.NewStyle()}
	for c, code := range codes {
		p[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawFrame draws the HUD and playfield for f, centred horizontally.
func drawFrame(dst *core.Screen, f snake.Frame, theme config.ThemeConfig) {
	dst.Clear()

	hud := fmt.Sprintf(" SNAKE  Score: %d", f.Score)
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}

	offsetX := (dst.Width() - f.Width) / 2
	for _, c := range f.Cells {
		r, color := theme.For(c.Category).Resolve()
		dst.SetColored(offsetX+c.Pos.X, hudHeight+c.Pos.Y, r, color)
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
