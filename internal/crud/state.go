package crud

import (
	"fmt"
	"slices"
)

// Mode is the modal state of a screen.
type Mode int

const (
	ModeClosed Mode = iota
	ModeCreate
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	default:
		return "closed"
	}
}

// State is everything one screen owns. Values are treated as immutable by
// the reducer: every transition returns a new State.
type State[E any] struct {
	Items   []E
	Mode    Mode
	Editing *E
	Draft   Draft
	// Pending is the entity awaiting delete confirmation.
	Pending *E
}

func (s State[E]) Open() bool { return s.Mode != ModeClosed }

// Action is a user intent fed to Reduce.
type Action interface {
	action() string
}

type OpenCreate struct{}

type Edit[E any] struct{ Entity E }

type SetField struct {
	Name  string
	Value string
}

type Submit struct{}

// Create commits d as a new entity without going through the form.
type Create struct{ Draft Draft }

type Cancel struct{}

type RequestDelete[E any] struct{ Entity E }

type ResolveDelete struct{ Confirmed bool }

func (OpenCreate) action() string       { return "open-create" }
func (Edit[E]) action() string          { return "edit" }
func (SetField) action() string         { return "set-field" }
func (Submit) action() string           { return "submit" }
func (Create) action() string           { return "create" }
func (Cancel) action() string           { return "cancel" }
func (RequestDelete[E]) action() string { return "request-delete" }
func (ResolveDelete) action() string    { return "resolve-delete" }

// ActionName is used for logging.
func ActionName(a Action) string {
	if a == nil {
		return ""
	}
	return a.action()
}

// ChangeKind classifies a committed mutation of the collection.
type ChangeKind string

const (
	Created ChangeKind = "created"
	Updated ChangeKind = "updated"
	Deleted ChangeKind = "deleted"
)

// Outcome describes side information of a transition. Change is nil when the
// collection did not change; Warning carries lenient coercion failures.
type Outcome struct {
	Change  *Change
	Warning error
}

type Change struct {
	Kind ChangeKind
	Key  int
}

// Policy tunes the reducer.
type Policy struct {
	// FirstKey seeds an empty collection. Keys are positive, so values
	// below 1 select DefaultFirstKey.
	FirstKey int
	// Strict rejects drafts with parse or validation errors instead of
	// committing coerced values.
	Strict bool
}

// Reducer applies actions for one schema.
type Reducer[E any] struct {
	Schema Schema[E]
	Policy Policy
}

func NewReducer[E any](schema Schema[E], policy Policy) Reducer[E] {
	return Reducer[E]{Schema: schema, Policy: policy}
}

// Reduce returns the state that results from applying a to s. On error the
// returned state equals s.
func (r Reducer[E]) Reduce(s State[E], a Action) (State[E], Outcome, error) {
	switch a := a.(type) {
	case OpenCreate:
		s.Editing = nil
		s.Draft = EmptyDraft(r.Schema.Fields())
		s.Mode = ModeCreate
		return s, Outcome{}, nil
	case Edit[E]:
		target := a.Entity
		s.Editing = &target
		s.Draft = r.Schema.ToDraft(target)
		s.Mode = ModeEdit
		return s, Outcome{}, nil
	case SetField:
		if !s.Open() {
			return s, Outcome{}, ErrModalClosed
		}
		s.Draft = s.Draft.With(a.Name, a.Value)
		return s, Outcome{}, nil
	case Submit:
		return r.submit(s)
	case Create:
		next := s
		next.Mode = ModeCreate
		next.Editing = nil
		next.Draft = a.Draft.Clone()
		out, outcome, err := r.submit(next)
		if err != nil {
			return s, Outcome{}, err
		}
		return out, outcome, nil
	case Cancel:
		return r.closed(s), Outcome{}, nil
	case RequestDelete[E]:
		target := a.Entity
		s.Pending = &target
		return s, Outcome{}, nil
	case ResolveDelete:
		if s.Pending == nil {
			return s, Outcome{}, ErrNoPendingDelete
		}
		key := r.Schema.Key(*s.Pending)
		s.Pending = nil
		if !a.Confirmed {
			return s, Outcome{}, nil
		}
		items := slices.DeleteFunc(slices.Clone(s.Items), func(e E) bool {
			return r.Schema.Key(e) == key
		})
		if len(items) == len(s.Items) {
			return s, Outcome{}, nil
		}
		s.Items = items
		return s, Outcome{Change: &Change{Kind: Deleted, Key: key}}, nil
	default:
		return s, Outcome{}, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
}

func (r Reducer[E]) submit(s State[E]) (State[E], Outcome, error) {
	if !s.Open() {
		return s, Outcome{}, ErrModalClosed
	}
	var (
		entity E
		err    error
		change Change
	)
	if s.Mode == ModeEdit && s.Editing != nil {
		key := r.Schema.Key(*s.Editing)
		if !slices.ContainsFunc(s.Items, func(e E) bool { return r.Schema.Key(e) == key }) {
			return s, Outcome{}, fmt.Errorf("%s %d: %w", r.Schema.Kind(), key, ErrNotFound)
		}
		entity, err = r.Schema.FromDraft(s.Draft, s.Editing, key)
		change = Change{Kind: Updated, Key: key}
	} else {
		key := NextKey(s.Items, r.Schema.Key, r.firstKey())
		entity, err = r.Schema.FromDraft(s.Draft, nil, key)
		change = Change{Kind: Created, Key: key}
	}

	var warning error
	if err != nil {
		if r.Policy.Strict || !IsRecoverable(err) {
			return s, Outcome{}, err
		}
		warning = err
	}
	if r.Policy.Strict {
		if v, ok := r.Schema.(Validator[E]); ok {
			if err := v.Validate(entity); err != nil {
				return s, Outcome{}, err
			}
		}
	}

	items := slices.Clone(s.Items)
	if change.Kind == Updated {
		for i := range items {
			if r.Schema.Key(items[i]) == change.Key {
				items[i] = entity
			}
		}
	} else {
		items = append(items, entity)
	}
	s.Items = items
	return r.closed(s), Outcome{Change: &change, Warning: warning}, nil
}

func (r Reducer[E]) closed(s State[E]) State[E] {
	s.Mode = ModeClosed
	s.Editing = nil
	s.Draft = EmptyDraft(r.Schema.Fields())
	return s
}

func (r Reducer[E]) firstKey() int {
	if r.Policy.FirstKey < 1 {
		return DefaultFirstKey
	}
	return r.Policy.FirstKey
}
