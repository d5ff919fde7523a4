package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/refresh-arcade/internal/core"
)

// styleCache maps core.Color to truecolor lipgloss styles on a base style.
type styleCache struct {
	base   lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

func newStyleCache(base lipgloss.Style) *styleCache {
	return &styleCache{base: base, styles: make(map[core.Color]lipgloss.Style)}
}

func (c *styleCache) get(cell core.Cell) lipgloss.Style {
	if !cell.Styled {
		return c.base
	}
	st, ok := c.styles[cell.Color]
	if !ok {
		st = c.base.Foreground(lipgloss.Color(cell.Color.Hex()))
		c.styles[cell.Color] = st
	}
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return RenderRows(s, 0, s.Height(), lipgloss.NewStyle())
}

// RenderRows renders rows [from, to) of a Screen on top of base.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderRows(s *core.Screen, from, to int, base lipgloss.Style) string {
	from = max(from, 0)
	to = min(to, s.Height())
	if from >= to {
		return ""
	}

	cache := newStyleCache(base)
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*(to-from)*2 + (to - from))

	for y := from; y < to; y++ {
		if y > from {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Styled != first.Styled || (cell.Styled && cell.Color != first.Color) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cache.get(first).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// padRight pads text with spaces to width.
func padRight(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}
