package crud

import (
	"time"

	"github.com/google/uuid"
)

// Event is published on the bus after every committed change.
type Event struct {
	ID     uuid.UUID
	Kind   string
	Change ChangeKind
	Key    int
	At     time.Time
}

func newEvent(kind string, c Change) *Event {
	return &Event{
		ID:     uuid.New(),
		Kind:   kind,
		Change: c.Kind,
		Key:    c.Key,
		At:     time.Now().UTC(),
	}
}
