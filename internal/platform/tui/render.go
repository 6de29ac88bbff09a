package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/raycaster/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]string{
	core.ColorRed:         "1",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorBrightWhite: "15",
	core.ColorGray:        "245",
}

// colorStyles holds one lipgloss style per palette entry.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	// The player and the facing indicator stand out over the ray fan.
	styles[core.ColorYellow] = styles[core.ColorYellow].Bold(true)
	styles[core.ColorRed] = styles[core.ColorRed].Bold(true)
	return styles
}

// styleFor returns the style of a color, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color are rendered as one run to keep the
// number of escape sequences low.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		runColor := s.GetCell(0, y).Color
		run.Reset()
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
		}
	}
	return sb.String()
}
