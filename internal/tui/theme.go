package tui

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors every view draws from.
type Palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	TabOff  lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
}

var DefaultPalette = Palette{
	Text:    "#cdd6f4",
	Muted:   "#a6adc8",
	Border:  "#585b70",
	Accent:  "#89b4fa",
	Success: "#a6e3a1",
	Error:   "#f38ba8",
	TabOff:  "#7f849c",
	Mantle:  "#181825",
	Surface: "#313244",
}

// Theme holds the styles shared by the shell, the tabs and the screens.
type Theme struct {
	Palette Palette

	App        lipgloss.Style
	HeaderBar  lipgloss.Style
	HeaderApp  lipgloss.Style
	HeaderUser lipgloss.Style
	TabOn      lipgloss.Style
	TabOff     lipgloss.Style
	TabSep     lipgloss.Style
	Status     lipgloss.Style
	StatusErr  lipgloss.Style
	Crumb      lipgloss.Style
	Footer     lipgloss.Style
	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style

	Title  lipgloss.Style
	Action lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Button lipgloss.Style
}

func NewTheme(p Palette) Theme {
	base := lipgloss.NewStyle()
	return Theme{
		Palette: p,

		App:        base.Foreground(p.Text),
		HeaderBar:  base.Background(p.Mantle).Foreground(p.Text),
		HeaderApp:  base.Background(p.Mantle).Foreground(p.Accent).Bold(true),
		HeaderUser: base.Background(p.Mantle).Foreground(p.Muted),
		TabOn:      base.Background(p.Surface).Foreground(p.Accent).Bold(true).Padding(0, 1),
		TabOff:     base.Background(p.Mantle).Foreground(p.TabOff).Padding(0, 1),
		TabSep:     base.Background(p.Mantle).Foreground(p.Border),
		Status:     base.Background(p.Surface).Foreground(p.Success),
		StatusErr:  base.Background(p.Surface).Foreground(p.Error),
		Crumb:      base.Background(p.Surface).Foreground(p.Accent).Bold(true),
		Footer:     base.Background(p.Mantle),
		FooterKey:  base.Background(p.Mantle).Foreground(p.Accent).Bold(true),
		FooterDesc: base.Background(p.Mantle).Foreground(p.Muted),

		Title:  base.Foreground(p.Accent).Bold(true),
		Action: base.Foreground(p.Accent).Bold(true),
		Muted:  base.Foreground(p.Muted),
		Error:  base.Foreground(p.Error),
		Button: base.Background(p.Surface).Bold(true).Padding(0, 1),
	}
}

// Styles is the theme every view renders with.
var Styles = NewTheme(DefaultPalette)
