package tabs

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/gestion/internal/crud"
	"github.com/jask/gestion/internal/eventbus"
	"github.com/jask/gestion/internal/tui"
	"github.com/jask/gestion/internal/tui/screens"
	"github.com/jask/gestion/internal/tui/widgets"
)

var changeWords = map[crud.ChangeKind]string{
	crud.Created: "creado",
	crud.Updated: "actualizado",
	crud.Deleted: "eliminado",
}

// Messages sent back by the screens a tab opens. tab is the owning tab ID.
type (
	submitMsg struct {
		tab   string
		draft crud.Draft
	}
	cancelMsg struct{ tab string }
	confirmMsg struct {
		tab string
		yes bool
	}
	filterMsg struct {
		tab   string
		query string
	}
)

// EntityTab lists one collection and drives its controller.
type EntityTab[E any] struct {
	id    string
	ctrl  *crud.Controller[E]
	table *tui.TableState[E]
	last  *crud.Event
}

// NewEntityTab builds a tab over ctrl. When bus is non-nil the tab listens
// for committed changes of its kind to report them on the status bar.
func NewEntityTab[E any](id string, ctrl *crud.Controller[E], bus eventbus.EventBus) *EntityTab[E] {
	t := &EntityTab[E]{id: id, ctrl: ctrl, table: tui.NewTableState(ctrl.Table())}
	if bus != nil {
		kind := ctrl.Schema().Kind()
		bus.Subscribe(func(e *crud.Event) {
			if e.Kind == kind {
				t.last = e
			}
		})
	}
	return t
}

func (t *EntityTab[E]) ID() string    { return t.id }
func (t *EntityTab[E]) Title() string { return t.ctrl.Schema().Labels().Plural }
func (t *EntityTab[E]) Scope() string { return "tab:" + t.id }

func (t *EntityTab[E]) Table() *tui.TableState[E] { return t.table }

func (t *EntityTab[E]) InitTab(m *tui.Model) tea.Cmd {
	t.refresh()
	return nil
}

func (t *EntityTab[E]) Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return t.handleKey(m.Keys(), msg)
	case submitMsg:
		if msg.tab == t.id {
			return t.submit(m.Keys(), msg.draft)
		}
	case cancelMsg:
		if msg.tab == t.id {
			return t.dispatch(t.ctrl.Cancel(), "Cancelado")
		}
	case confirmMsg:
		if msg.tab == t.id {
			fallback := "Eliminación cancelada"
			if msg.yes {
				fallback = "Sin cambios"
			}
			return t.dispatch(t.ctrl.ResolveDelete(msg.yes), fallback)
		}
	case filterMsg:
		if msg.tab == t.id {
			t.table.SetFilter(msg.query)
			return tui.StatusCmd(fmt.Sprintf("%d de %d registros", len(t.table.Rows()), t.table.Total()))
		}
	}
	return nil
}

func (t *EntityTab[E]) handleKey(keys *tui.KeyRegistry, msg tea.KeyMsg) tea.Cmd {
	scope := t.Scope()
	labels := t.ctrl.Schema().Labels()
	switch {
	case keys.IsAction(msg, "new", scope):
		if err := t.ctrl.OpenCreate(); err != nil {
			return tui.ErrorCmd(err)
		}
		return tui.PushScreenCmd(t.editor(keys, labels.NewTitle, labels.SubmitCreate, t.ctrl.State().Draft))
	case keys.IsAction(msg, "edit", scope):
		sel, ok := t.table.Selected()
		if !ok {
			return tui.StatusCmd("Sin selección")
		}
		if err := t.ctrl.Edit(sel); err != nil {
			return tui.ErrorCmd(err)
		}
		return tui.PushScreenCmd(t.editor(keys, labels.EditTitle, labels.UpdateAction, t.ctrl.State().Draft))
	case keys.IsAction(msg, "delete", scope):
		sel, ok := t.table.Selected()
		if !ok {
			return tui.StatusCmd("Sin selección")
		}
		if err := t.ctrl.RequestDelete(sel); err != nil {
			return tui.ErrorCmd(err)
		}
		id := t.id
		return tui.PushScreenCmd(screens.NewConfirm(keys, "Eliminar", labels.ConfirmDelete, func(yes bool) tea.Msg {
			return confirmMsg{tab: id, yes: yes}
		}))
	case keys.IsAction(msg, "filter", scope):
		id := t.id
		return tui.PushScreenCmd(screens.NewEditor(keys, "Filtrar "+labels.Plural, "Aplicar",
			[]crud.Field{{Name: "q", Label: "Filtro"}},
			crud.Draft{"q": t.table.Filter()},
			func(d crud.Draft) tea.Msg { return filterMsg{tab: id, query: d.Get("q")} },
		))
	case keys.IsAction(msg, "clear-filter", scope):
		t.table.SetFilter("")
	case keys.IsAction(msg, "sort", scope):
		t.table.CycleSort()
	case keys.IsAction(msg, "sort-reverse", scope):
		t.table.Reverse()
	case keys.IsAction(msg, "row-down", scope):
		t.table.CursorDown()
	case keys.IsAction(msg, "row-up", scope):
		t.table.CursorUp()
	case keys.IsAction(msg, "next-page", scope):
		t.table.NextPage()
	case keys.IsAction(msg, "prev-page", scope):
		t.table.PrevPage()
	}
	return nil
}

func (t *EntityTab[E]) editor(keys *tui.KeyRegistry, title, submit string, d crud.Draft, opts ...screens.EditorOption) tui.Screen {
	id := t.id
	opts = append(opts, screens.WithCancel(func() tea.Msg { return cancelMsg{tab: id} }))
	return screens.NewEditor(keys, title, submit, t.ctrl.Schema().Fields(), d,
		func(d crud.Draft) tea.Msg { return submitMsg{tab: id, draft: d} },
		opts...,
	)
}

// submit commits d. A recoverable rejection reopens the form with the typed
// values and the error; anything else closes it.
func (t *EntityTab[E]) submit(keys *tui.KeyRegistry, d crud.Draft) tea.Cmd {
	if err := t.ctrl.SetDraft(d); err != nil {
		return t.dispatch(err, "")
	}
	state := t.ctrl.State()
	err := t.ctrl.Submit()
	if crud.IsRecoverable(err) {
		labels := t.ctrl.Schema().Labels()
		title, action := labels.NewTitle, labels.SubmitCreate
		if state.Mode == crud.ModeEdit {
			title, action = labels.EditTitle, labels.UpdateAction
		}
		return tea.Batch(
			tui.PushScreenCmd(t.editor(keys, title, action, d, screens.WithError(err))),
			tui.ErrorCmd(err),
		)
	}
	if err != nil && t.ctrl.State().Open() {
		_ = t.ctrl.Cancel()
	}
	return t.dispatch(err, "")
}

// dispatch refreshes the table after a controller call and reports the
// result: the error, the committed change, or fallback when nothing changed.
func (t *EntityTab[E]) dispatch(err error, fallback string) tea.Cmd {
	t.refresh()
	last := t.last
	t.last = nil
	switch {
	case err != nil:
		return tui.ErrorCmd(err)
	case last != nil:
		return tui.StatusCmd(fmt.Sprintf("%s %d %s", t.ctrl.Schema().Labels().Singular, last.Key, changeWords[last.Change]))
	case fallback != "":
		return tui.StatusCmd(fallback)
	}
	return nil
}

func (t *EntityTab[E]) refresh() {
	t.table.SetSpec(t.ctrl.Table())
}

// Summary reports the sort order and filter on the status bar.
func (t *EntityTab[E]) Summary() string {
	sortBy, desc := t.table.Sort()
	dir := "asc"
	if desc {
		dir = "desc"
	}
	out := fmt.Sprintf("orden: %s %s", sortBy, dir)
	if q := t.table.Filter(); q != "" {
		out += fmt.Sprintf(" · filtro: %q", q)
	}
	return out
}

func (t *EntityTab[E]) Build(m *tui.Model) widgets.Widget {
	labels := t.ctrl.Schema().Labels()
	top := tui.Styles.Action.Render(fmt.Sprintf("[%s] %s", m.Keys().KeyFor("new", t.Scope()), labels.CreateAction))
	bottom := tui.Styles.Muted.Render(fmt.Sprintf("Página %d/%d · %d de %d registros",
		t.table.Page()+1, t.table.PageCount(), len(t.table.Rows()), t.table.Total()))
	return widgets.Stack{
		Top: []string{top, ""},
		Fill: widgets.Grid{
			Headers: t.table.Headers(),
			Rows:    t.table.Cells(),
			Cursor:  t.table.Cursor(),
			Empty:   "Sin registros",
		},
		Bottom: []string{bottom},
	}
}
