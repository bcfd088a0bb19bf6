package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Widget interface {
	Render(width, height int) string
}

// Box frames content with a rounded border and a title line.
type Box struct {
	Title   string
	Content string
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(max(1, width-2)).Height(max(1, height-2))
	return style.Render("[" + b.Title + "]\n" + b.Content)
}

// Stack renders widgets top to bottom. Fixed children take their own height;
// the remaining lines go to Fill.
type Stack struct {
	Top    []string
	Fill   Widget
	Bottom []string
}

func (s Stack) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := append([]string(nil), s.Top...)
	fill := height - len(s.Top) - len(s.Bottom)
	if s.Fill != nil && fill > 0 {
		lines = append(lines, s.Fill.Render(width, fill))
	}
	lines = append(lines, s.Bottom...)
	return strings.Join(lines, "\n")
}
