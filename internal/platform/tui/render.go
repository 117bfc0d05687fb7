package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-taxi/internal/core"
)

// palette holds the ANSI 256-color code for each core.Color.
var palette = [...]string{
	core.ColorDefault:      "",
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightBlue:   "12",
	core.ColorBrightCyan:   "14",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

var cellStyles = buildCellStyles()

func buildCellStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(palette))
	for i, code := range palette {
		if code == "" {
			styles[i] = lipgloss.NewStyle()
			continue
		}
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string.
// Each row is split into runs of one color so a style is applied per run.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	var run strings.Builder
	for y := range h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < w; x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
