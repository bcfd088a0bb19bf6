package screens

import "github.com/jask/gestion/internal/tui"

func registry(keys *tui.KeyRegistry) *tui.KeyRegistry {
	if keys == nil {
		return tui.NewKeyRegistry(tui.DefaultKeyBindings())
	}
	return keys
}
