package widgets

import (
	"math"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/x/ansi"
)

// Grid renders rows under headers with the cursor row highlighted. Ratios,
// when set, weight the column widths.
type Grid struct {
	Headers []string
	Rows    [][]string
	Ratios  []float64
	Cursor  int
	Empty   string
}

func (g Grid) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(g.Headers) == 0 {
		return "No data"
	}
	// bubbles/table pads every cell by one column on each side
	usable := max(len(g.Headers), width-2*len(g.Headers))
	widths := splitWidths(usable, len(g.Headers), g.Ratios)
	cols := make([]table.Column, len(g.Headers))
	for i, h := range g.Headers {
		cols[i] = table.Column{Title: ansi.Truncate(h, widths[i], "…"), Width: widths[i]}
	}
	rows := make([]table.Row, 0, len(g.Rows))
	for _, r := range g.Rows {
		row := make(table.Row, len(cols))
		for i := range cols {
			if i < len(r) {
				row[i] = r[i]
			}
		}
		rows = append(rows, row)
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(1, height-1)),
		table.WithWidth(width),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)
	if len(rows) > 0 {
		t.SetCursor(min(max(0, g.Cursor), len(rows)-1))
	}
	out := t.View()
	if len(rows) == 0 && g.Empty != "" {
		out += "\n" + g.Empty
	}
	return out
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i, r := range ratios {
		if r <= 0 {
			r = 1
		}
		w := int(math.Floor((r / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}
