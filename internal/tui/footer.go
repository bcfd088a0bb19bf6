package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// footerPairs folds an action and its reverse into a single footer entry.
var footerPairs = map[string]struct{ reverse, desc string }{
	"row-down":   {"row-up", "filas"},
	"next-page":  {"prev-page", "página"},
	"next-field": {"prev-field", "campo"},
}

// Summarizer is implemented by tabs that describe their current view on the
// right side of the status bar.
type Summarizer interface {
	Summary() string
}

func footerHelp(bindings []KeyBinding) []key.Help {
	first := make(map[string]KeyBinding, len(bindings))
	for _, b := range bindings {
		if _, ok := first[b.Action]; !ok && len(b.Keys) > 0 {
			first[b.Action] = b
		}
	}
	done := map[string]bool{}
	out := make([]key.Help, 0, len(first))
	for _, b := range bindings {
		if len(b.Keys) == 0 || done[b.Action] {
			continue
		}
		done[b.Action] = true
		h := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)).Help()
		if pair, ok := footerPairs[b.Action]; ok {
			if rev, ok := first[pair.reverse]; ok {
				done[pair.reverse] = true
				h.Key += "/" + rev.Keys[0]
				h.Desc = pair.desc
			}
		}
		out = append(out, h)
	}
	return out
}

// RenderFooter lists the shortcuts of the active scope, dropping the ones
// that do not fit the width.
func RenderFooter(m Model) string {
	width := max(1, m.width)
	sep := Styles.Footer.Render("  ")
	more := Styles.FooterDesc.Render(" …")
	var (
		line string
		used int
	)
	for i, h := range footerHelp(m.keys.BindingsForScope(m.ActiveScope())) {
		entry := Styles.FooterKey.Render(h.Key) + Styles.Footer.Render(" ") + Styles.FooterDesc.Render(h.Desc)
		if i > 0 {
			entry = sep + entry
		}
		w := ansi.StringWidth(entry)
		if used+w+ansi.StringWidth(more) > width {
			line += more
			break
		}
		line += entry
		used += w
	}
	if line == "" {
		line = Styles.FooterDesc.Render("Sin atajos")
	}
	return padLine(Styles.Footer, width, line)
}

// RenderStatusBar shows where the user is (tab, then open screen), the last
// status message and the active tab's summary.
func RenderStatusBar(m Model) string {
	width := max(1, m.width)
	style := Styles.Status
	if m.statusErr {
		style = Styles.StatusErr
	}

	crumbs := make([]string, 0, 2)
	if t := m.ActiveTab(); t != nil {
		crumbs = append(crumbs, t.Title())
	}
	if top := m.screens.Top(); top != nil && top.Title() != "" {
		crumbs = append(crumbs, top.Title())
	}
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	left := style.Render(" " + msg)
	if len(crumbs) > 0 {
		left = Styles.Crumb.Render(" "+strings.Join(crumbs, " › ")) + style.Render(" │") + left
	}

	right := ""
	if s, ok := m.ActiveTab().(Summarizer); ok {
		right = Styles.Status.Foreground(Styles.Palette.Muted).Render(s.Summary() + " ")
	}
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if right == "" || gap < 1 {
		return padLine(style, width, left)
	}
	return padLine(style, width, left+style.Render(strings.Repeat(" ", gap))+right)
}

// padLine renders text on a single line of exactly width cells.
func padLine(style lipgloss.Style, width int, text string) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += style.Render(strings.Repeat(" ", width-w))
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
