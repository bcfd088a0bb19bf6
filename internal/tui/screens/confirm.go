package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/gestion/internal/tui"
)

// Confirm asks a yes/no question. Any answer closes it.
type Confirm struct {
	keys     *tui.KeyRegistry
	title    string
	prompt   string
	onAnswer func(yes bool) tea.Msg
}

// NewConfirm answers through the confirm, deny and close actions of keys;
// a nil registry uses the default bindings.
func NewConfirm(keys *tui.KeyRegistry, title, prompt string, onAnswer func(yes bool) tea.Msg) *Confirm {
	return &Confirm{keys: registry(keys), title: title, prompt: prompt, onAnswer: onAnswer}
}

func (s *Confirm) Title() string { return s.title }
func (s *Confirm) Scope() string { return tui.ScopeConfirm }

func (s *Confirm) Update(msg tea.Msg) (tui.Screen, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch {
	case s.keys.IsAction(km, "confirm", tui.ScopeConfirm):
		return s, s.answer(true), true
	case s.keys.IsAction(km, "deny", tui.ScopeConfirm), s.keys.IsAction(km, "close", tui.ScopeConfirm):
		return s, s.answer(false), true
	}
	return s, nil, false
}

func (s *Confirm) answer(yes bool) tea.Cmd {
	if s.onAnswer == nil {
		return nil
	}
	return func() tea.Msg { return s.onAnswer(yes) }
}

func (s *Confirm) View(width, height int) string {
	return strings.Join([]string{
		tui.Styles.Title.Render(s.title),
		"",
		s.prompt,
		"",
		tui.Styles.Button.Render("Aceptar") + "  " + tui.Styles.Muted.Render("Cancelar"),
		tui.Styles.Muted.Render(s.keys.KeyFor("confirm", tui.ScopeConfirm) + ": aceptar  " +
			s.keys.KeyFor("deny", tui.ScopeConfirm) + ": cancelar"),
	}, "\n")
}
