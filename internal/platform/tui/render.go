package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/reef-runner/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorDeepBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("18")),
	core.ColorBlue:     lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	core.ColorCyan:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorTeal:     lipgloss.NewStyle().Foreground(lipgloss.Color("30")),
	core.ColorSand:     lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorSeaweed:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorCoral:    lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	core.ColorFish:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorFishDead: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGold:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorShark:    lipgloss.NewStyle().Foreground(lipgloss.Color("67")),
	core.ColorOctopus:  lipgloss.NewStyle().Foreground(lipgloss.Color("170")),
	core.ColorJelly:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	core.ColorBubble:   lipgloss.NewStyle().Foreground(lipgloss.Color("195")),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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
