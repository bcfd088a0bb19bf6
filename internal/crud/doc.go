// Package crud holds the generic entity collection controller shared by every
// admin screen.
//
// Allowed here:
// - draft form state, modal state and the reducer that moves between them
// - key allocation and the tabular contract handed to table widgets
//
// Not allowed here:
// - rendering, key handling or persistence; those live in tui and store
package crud
