package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// Styles holds the lipgloss styles for the game tiles.
type Styles struct {
	enabled bool
	tiles   map[rune]lipgloss.Style
	plain   lipgloss.Style
}

// NewStyles builds tile styles on the given renderer, so each SSH session
// gets colors matched to its own terminal. With color disabled every line
// is passed through unchanged.
func NewStyles(r *lipgloss.Renderer, color bool) Styles {
	return Styles{
		enabled: color,
		tiles: map[rune]lipgloss.Style{
			platformer.PlayerChar:   r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			platformer.PlatformChar: r.NewStyle().Foreground(lipgloss.Color("2")),
			platformer.EmptyChar:    r.NewStyle().Foreground(lipgloss.Color("240")),
		},
		plain: r.NewStyle(),
	}
}

// RenderLine styles a grid row. Lines containing anything other than tiles
// (coordinates, diagnostics) are returned as is.
// Adjacent cells with the same tile are grouped to minimize ANSI escape sequences.
func (s Styles) RenderLine(line string) string {
	if !s.enabled || !isGridRow(line) {
		return line
	}

	runes := []rune(line)
	var sb strings.Builder
	sb.Grow(len(runes) * 2)

	x := 0
	for x < len(runes) {
		start := runes[x]
		end := x
		for end < len(runes) && runes[end] == start {
			end++
		}

		style, ok := s.tiles[start]
		if !ok {
			style = s.plain
		}
		sb.WriteString(style.Render(string(runes[x:end])))
		x = end
	}
	return sb.String()
}

// isGridRow reports whether line consists only of tile runes.
func isGridRow(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		switch r {
		case platformer.PlayerChar, platformer.PlatformChar, platformer.EmptyChar:
		default:
			return false
		}
	}
	return true
}
