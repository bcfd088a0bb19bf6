// Package tui contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, the key registry
// - shared state machines used across tabs (for example table sort/filter/paging)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
// - entity rules; those live in internal/crud
package tui
