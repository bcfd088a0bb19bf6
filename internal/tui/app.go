package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/gestion/internal/tui/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

type Model struct {
	width     int
	height    int
	appName   string
	userName  string
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	status    string
	statusErr bool
	quitting  bool
}

type Option func(*Model)

// WithUser sets the name shown in the header.
func WithUser(name string) Option {
	return func(m *Model) { m.userName = name }
}

func WithAppName(name string) Option {
	return func(m *Model) { m.appName = name }
}

func NewModel(tabs []Tab, keys *KeyRegistry, opts ...Option) Model {
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	m := Model{
		tabs:      tabs,
		keys:      keys,
		appName:   "Gestión",
		status:    "Ready",
		activeTab: 0,
		width:     100,
		height:    32,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m Model) ActiveTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

func (m Model) Screens() int { return m.screens.Len() }

func (m Model) Keys() *KeyRegistry { return m.keys }

func (m Model) Size() (width, height int) { return m.width, m.height }
