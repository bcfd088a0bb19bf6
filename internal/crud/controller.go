package crud

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/jask/gestion/internal/eventbus"
)

// DefaultPageSize is the rows-per-page handed to table views.
const DefaultPageSize = 10

// Confirmer answers a yes/no prompt synchronously.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Controller owns the state of one entity screen. It is driven from a single
// event loop and is not safe for concurrent use.
type Controller[E any] struct {
	schema   Schema[E]
	reducer  Reducer[E]
	state    State[E]
	log      logrus.FieldLogger
	bus      eventbus.EventBus
	pageSize int
}

type Option func(*options)

type options struct {
	log      logrus.FieldLogger
	bus      eventbus.EventBus
	policy   Policy
	pageSize int
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

func WithBus(bus eventbus.EventBus) Option {
	return func(o *options) { o.bus = bus }
}

func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

func WithPageSize(n int) Option {
	return func(o *options) { o.pageSize = n }
}

func NewController[E any](schema Schema[E], opts ...Option) *Controller[E] {
	o := options{pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		o.log = l
	}
	if o.pageSize <= 0 {
		o.pageSize = DefaultPageSize
	}
	reducer := NewReducer(schema, o.policy)
	return &Controller[E]{
		schema:   schema,
		reducer:  reducer,
		state:    reducer.closed(State[E]{}),
		log:      o.log.WithField("kind", schema.Kind()),
		bus:      o.bus,
		pageSize: o.pageSize,
	}
}

func (c *Controller[E]) Schema() Schema[E] { return c.schema }

func (c *Controller[E]) State() State[E] { return c.state }

func (c *Controller[E]) Items() []E { return slices.Clone(c.state.Items) }

func (c *Controller[E]) Len() int { return len(c.state.Items) }

// Load replaces the collection without publishing events. Used when restoring
// a snapshot.
func (c *Controller[E]) Load(items []E) {
	c.state.Items = slices.Clone(items)
}

func (c *Controller[E]) Find(key int) (E, bool) {
	for _, e := range c.state.Items {
		if c.schema.Key(e) == key {
			return e, true
		}
	}
	var zero E
	return zero, false
}

func (c *Controller[E]) NextKey() int {
	return NextKey(c.state.Items, c.schema.Key, c.reducer.firstKey())
}

// Dispatch runs a through the reducer and publishes the resulting change.
// A publish failure is returned after the state has been committed.
func (c *Controller[E]) Dispatch(a Action) error {
	next, outcome, err := c.reducer.Reduce(c.state, a)
	if err != nil {
		c.log.WithError(err).WithField("action", ActionName(a)).Debug("action rejected")
		return err
	}
	c.state = next
	if outcome.Warning != nil {
		c.log.WithError(outcome.Warning).WithField("action", ActionName(a)).Warn("draft coerced")
	}
	if outcome.Change == nil {
		return nil
	}
	c.log.WithFields(logrus.Fields{
		"action": ActionName(a),
		"change": outcome.Change.Kind,
		"key":    outcome.Change.Key,
	}).Info("collection changed")
	if c.bus == nil {
		return nil
	}
	if err := c.bus.PublishE(newEvent(c.schema.Kind(), *outcome.Change)); err != nil && !errors.Is(err, eventbus.ErrNoSubscribers) {
		return fmt.Errorf("publish %s %s: %w", c.schema.Kind(), outcome.Change.Kind, err)
	}
	return nil
}

func (c *Controller[E]) OpenCreate() error { return c.Dispatch(OpenCreate{}) }

func (c *Controller[E]) Edit(e E) error { return c.Dispatch(Edit[E]{Entity: e}) }

func (c *Controller[E]) SetField(name, value string) error {
	return c.Dispatch(SetField{Name: name, Value: value})
}

// SetDraft overwrites every field present in d.
func (c *Controller[E]) SetDraft(d Draft) error {
	for _, f := range c.schema.Fields() {
		v, ok := d[f.Name]
		if !ok {
			continue
		}
		if err := c.SetField(f.Name, v); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller[E]) Submit() error { return c.Dispatch(Submit{}) }

func (c *Controller[E]) Create(d Draft) error { return c.Dispatch(Create{Draft: d}) }

func (c *Controller[E]) Cancel() error { return c.Dispatch(Cancel{}) }

func (c *Controller[E]) RequestDelete(e E) error { return c.Dispatch(RequestDelete[E]{Entity: e}) }

func (c *Controller[E]) ResolveDelete(confirmed bool) error {
	return c.Dispatch(ResolveDelete{Confirmed: confirmed})
}

// Delete asks confirm and removes e when the answer is yes. It reports
// whether the entity was removed.
func (c *Controller[E]) Delete(e E, confirm Confirmer) (bool, error) {
	if err := c.RequestDelete(e); err != nil {
		return false, err
	}
	ok := confirm != nil && confirm.Confirm(c.schema.Labels().ConfirmDelete)
	before := len(c.state.Items)
	if err := c.ResolveDelete(ok); err != nil {
		return false, err
	}
	return ok && len(c.state.Items) < before, nil
}

// Table returns the tabular contract for the current collection.
func (c *Controller[E]) Table() TableSpec[E] {
	return TableSpec[E]{
		Columns:     c.schema.Columns(),
		Items:       c.Items(),
		PageSize:    c.pageSize,
		DefaultSort: c.schema.DefaultSort(),
	}
}
