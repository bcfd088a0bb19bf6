package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/gestion/internal/crud"
	"github.com/jask/gestion/internal/tui"
)

// Editor is the modal form for one draft. Submitting and cancelling both
// close the screen and report back through the callbacks.
type Editor struct {
	keys        *tui.KeyRegistry
	title       string
	submitLabel string
	fields      []crud.Field
	inputs      []textinput.Model
	focus       int
	err         error
	onSubmit    func(d crud.Draft) tea.Msg
	onCancel    func() tea.Msg
}

type EditorOption func(*Editor)

// WithError shows err under the title, used when a submit is rejected.
func WithError(err error) EditorOption {
	return func(e *Editor) { e.err = err }
}

func WithCancel(fn func() tea.Msg) EditorOption {
	return func(e *Editor) { e.onCancel = fn }
}

// NewEditor builds a form over fields seeded from draft. Keys resolve through
// the submit, close, next-field and prev-field actions of keys; a nil registry
// uses the default bindings.
func NewEditor(keys *tui.KeyRegistry, title, submitLabel string, fields []crud.Field, draft crud.Draft, onSubmit func(crud.Draft) tea.Msg, opts ...EditorOption) *Editor {
	inputs := make([]textinput.Model, 0, len(fields))
	for i, f := range fields {
		inp := textinput.New()
		inp.Prompt = f.Label + ": "
		if f.Numeric {
			inp.Placeholder = "0"
		}
		inp.SetValue(draft.Get(f.Name))
		if i == 0 {
			inp.Focus()
		}
		inputs = append(inputs, inp)
	}
	e := &Editor{keys: registry(keys), title: title, submitLabel: submitLabel, fields: fields, inputs: inputs, onSubmit: onSubmit}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (s *Editor) Title() string { return s.title }
func (s *Editor) Scope() string { return tui.ScopeEditor }

// Draft is the current content of the inputs.
func (s *Editor) Draft() crud.Draft {
	d := make(crud.Draft, len(s.fields))
	for i, f := range s.fields {
		d[f.Name] = s.inputs[i].Value()
	}
	return d
}

func (s *Editor) Update(msg tea.Msg) (tui.Screen, tea.Cmd, bool) {
	if len(s.inputs) == 0 {
		return s, nil, true
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case s.keys.IsAction(km, "close", tui.ScopeEditor):
			if s.onCancel != nil {
				return s, func() tea.Msg { return s.onCancel() }, true
			}
			return s, nil, true
		case s.keys.IsAction(km, "next-field", tui.ScopeEditor):
			s.move(1)
			return s, nil, false
		case s.keys.IsAction(km, "prev-field", tui.ScopeEditor):
			s.move(-1)
			return s, nil, false
		case s.keys.IsAction(km, "submit", tui.ScopeEditor):
			d := s.Draft()
			if s.onSubmit != nil {
				return s, func() tea.Msg { return s.onSubmit(d) }, true
			}
			return s, nil, true
		}
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd, false
}

func (s *Editor) move(dir int) {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + dir + len(s.inputs)) % len(s.inputs)
	s.inputs[s.focus].Focus()
}

func (s *Editor) View(width, height int) string {
	lines := []string{tui.Styles.Title.Render(s.title)}
	if s.err != nil {
		lines = append(lines, tui.Styles.Error.Render(s.err.Error()))
	}
	lines = append(lines, "")
	for _, in := range s.inputs {
		in.Width = max(10, width-len(in.Prompt)-8)
		lines = append(lines, in.View())
	}
	lines = append(lines,
		"",
		tui.Styles.Button.Render(s.submitLabel)+"  "+tui.Styles.Muted.Render("Cancelar"),
		tui.Styles.Muted.Render(s.keys.KeyFor("submit", tui.ScopeEditor)+": "+strings.ToLower(s.submitLabel)+
			"  "+s.keys.KeyFor("close", tui.ScopeEditor)+": cancelar"+
			"  "+s.keys.KeyFor("next-field", tui.ScopeEditor)+": campo siguiente"),
	)
	return strings.Join(lines, "\n")
}
