// Package store keeps an optional sqlite snapshot of each collection in sync
// with its controller.
package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jask/gestion/internal/crud"
	"github.com/jask/gestion/internal/eventbus"
)

// Repo persists a whole collection of one kind.
type Repo[E any] interface {
	List(ctx context.Context) ([]E, error)
	ReplaceAll(ctx context.Context, items []E) error
}

// Snapshot binds a repository to the controller of the same kind.
type Snapshot[E any] struct {
	repo Repo[E]
	ctrl *crud.Controller[E]
	log  logrus.FieldLogger
}

func NewSnapshot[E any](repo Repo[E], ctrl *crud.Controller[E], log logrus.FieldLogger) *Snapshot[E] {
	return &Snapshot[E]{
		repo: repo,
		ctrl: ctrl,
		log:  log.WithField("kind", ctrl.Schema().Kind()),
	}
}

// Restore loads the stored collection into the controller.
func (s *Snapshot[E]) Restore(ctx context.Context) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("restore %s: %w", s.ctrl.Schema().Kind(), err)
	}
	s.ctrl.Load(items)
	s.log.WithField("count", len(items)).Debug("snapshot restored")
	return nil
}

// Save writes the controller's current collection.
func (s *Snapshot[E]) Save(ctx context.Context) error {
	items := s.ctrl.Items()
	if err := s.repo.ReplaceAll(ctx, items); err != nil {
		return fmt.Errorf("save %s: %w", s.ctrl.Schema().Kind(), err)
	}
	s.log.WithField("count", len(items)).Debug("snapshot saved")
	return nil
}

// Attach subscribes an autosave handler for this kind on bus. Writes happen
// synchronously in the publishing goroutine, so a failed write comes back as
// the controller's Dispatch error.
func (s *Snapshot[E]) Attach(ctx context.Context, bus eventbus.EventBus) {
	kind := s.ctrl.Schema().Kind()
	bus.Subscribe(func(e *crud.Event) error {
		if e.Kind != kind {
			return nil
		}
		return s.Save(ctx)
	})
}
