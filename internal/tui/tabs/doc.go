// Package tabs holds the top-level views hosted by tui.Model.
//
// Allowed here:
// - per-tab key handling and the screens a tab opens
// - translating user intents into controller calls
//
// Not allowed here:
// - collection rules (keys, coercion, validation); see internal/crud
// - low-level widget rendering primitives
package tabs
