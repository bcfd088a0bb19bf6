package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/gestion/internal/tui/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Hasta luego\n"
	}
	width, height := max(1, m.width), max(1, m.height)
	header, status, footer := renderHeader(m), RenderStatusBar(m), RenderFooter(m)
	bodyHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))

	view := strings.Join([]string{header, status, m.body(bodyHeight), footer}, "\n")
	return Styles.App.Width(width).MaxWidth(width).Render(fitHeight(view, height))
}

// body is the active tab, with the top screen drawn over it as a card.
func (m Model) body(height int) string {
	if height <= 0 {
		return ""
	}
	var body string
	if len(m.tabs) > 0 {
		body = m.tabs[m.activeTab].Build(&m).Render(max(1, m.width-2), height)
	}
	if top := m.screens.Top(); top != nil {
		card := top.View(max(20, m.width-12), max(8, m.height-8))
		body = widgets.RenderPopup(body, card, m.width-2, height)
	}
	return fitHeight(body, height)
}

// renderHeader shows the app name and user on the left and the numbered tab
// strip on the right.
func renderHeader(m Model) string {
	width := max(1, m.width)
	labels := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		style := Styles.TabOff
		if i == m.activeTab {
			style = Styles.TabOn
		}
		labels = append(labels, style.Render(fmt.Sprintf("%d:%s", i+1, t.Title())))
	}

	left := Styles.HeaderApp.Render(m.appName)
	if name := strings.TrimSpace(m.userName); name != "" {
		left += Styles.HeaderUser.Render("  " + name)
	}
	right := ansi.Truncate(Styles.TabSep.Render(" ")+strings.Join(labels, Styles.TabSep.Render("│")), width, "")
	gap := max(1, width-ansi.StringWidth(left)-ansi.StringWidth(right))
	return padLine(Styles.HeaderBar, width, left+Styles.HeaderBar.Render(strings.Repeat(" ", gap))+right)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
