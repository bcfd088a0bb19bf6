package tui

import "strings"

const (
	ScopeEditor  = "screen:editor"
	ScopeConfirm = "screen:confirm"
)

func DefaultKeyBindings() []KeyBinding {
	tabs := []string{"tab:*"}
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "salir", Scopes: tabs},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "areas", Scopes: tabs},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "programas", Scopes: tabs},
		{Keys: []string{"n"}, Action: "new", Description: "nuevo", Scopes: tabs},
		{Keys: []string{"e", "enter"}, Action: "edit", Description: "editar", Scopes: tabs},
		{Keys: []string{"d", "delete"}, Action: "delete", Description: "eliminar", Scopes: tabs},
		{Keys: []string{"/"}, Action: "filter", Description: "filtrar", Scopes: tabs},
		{Keys: []string{"x"}, Action: "clear-filter", Description: "limpiar filtro", Scopes: tabs},
		{Keys: []string{"s"}, Action: "sort", Description: "ordenar", Scopes: tabs},
		{Keys: []string{"r"}, Action: "sort-reverse", Description: "invertir", Scopes: tabs},
		{Keys: []string{"j", "down"}, Action: "row-down", Description: "abajo", Scopes: tabs},
		{Keys: []string{"k", "up"}, Action: "row-up", Description: "arriba", Scopes: tabs},
		{Keys: []string{"]", "pgdown"}, Action: "next-page", Description: "pág. sig.", Scopes: tabs},
		{Keys: []string{"[", "pgup"}, Action: "prev-page", Description: "pág. ant.", Scopes: tabs},
		{Keys: []string{"enter"}, Action: "submit", Description: "guardar", Scopes: []string{ScopeEditor}},
		{Keys: []string{"tab", "down"}, Action: "next-field", Description: "campo sig.", Scopes: []string{ScopeEditor}},
		{Keys: []string{"shift+tab", "up"}, Action: "prev-field", Description: "campo ant.", Scopes: []string{ScopeEditor}},
		{Keys: []string{"esc"}, Action: "close", Description: "cancelar", Scopes: []string{ScopeEditor, ScopeConfirm}},
		{Keys: []string{"y", "s", "enter"}, Action: "confirm", Description: "sí", Scopes: []string{ScopeConfirm}},
		{Keys: []string{"n"}, Action: "deny", Description: "no", Scopes: []string{ScopeConfirm}},
	}
}

// DefaultKeybindingsByAction keeps the keys of the first binding of each
// action.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
