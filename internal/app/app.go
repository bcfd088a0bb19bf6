// Package app wires configuration, logging, the event bus, the entity
// controllers and the optional snapshot store into a runnable program.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jask/gestion/internal/config"
	"github.com/jask/gestion/internal/crud"
	"github.com/jask/gestion/internal/database"
	"github.com/jask/gestion/internal/database/repository"
	"github.com/jask/gestion/internal/entity"
	"github.com/jask/gestion/internal/eventbus"
	"github.com/jask/gestion/internal/logging"
	"github.com/jask/gestion/internal/store"
	"github.com/jask/gestion/internal/tui"
	"github.com/jask/gestion/internal/tui/tabs"
)

type App struct {
	Config    config.Config
	Log       *logrus.Logger
	Bus       eventbus.EventBus
	Areas     *crud.Controller[entity.Area]
	Programas *crud.Controller[entity.Programa]

	logFile  *os.File
	db       *sql.DB
	areaSnap *store.Snapshot[entity.Area]
	progSnap *store.Snapshot[entity.Programa]
}

type Option func(*App)

// WithLogger replaces the file logger built from config.
func WithLogger(log *logrus.Logger) Option {
	return func(a *App) { a.Log = log }
}

// New builds the application. When cfg.Store.Path is set the collections are
// restored from it and, with autosave on, written back after every change.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	a := &App{Config: cfg}
	for _, opt := range opts {
		opt(a)
	}
	if a.Log == nil {
		f, log, err := logging.File(logging.ParseLevel(cfg.Log.Level), cfg.Log.Path)
		if err != nil {
			return nil, err
		}
		a.logFile, a.Log = f, log
	}

	a.Bus = eventbus.New(a.Log)
	a.Bus.Subscribe(logging.Audit(a.Log))

	crudOpts := []crud.Option{
		crud.WithLogger(a.Log),
		crud.WithBus(a.Bus),
		crud.WithPageSize(cfg.UI.PageSize),
		crud.WithPolicy(crud.Policy{FirstKey: cfg.CRUD.FirstKey, Strict: cfg.CRUD.Strict}),
	}
	a.Areas = crud.NewController[entity.Area](entity.AreaSchema{}, crudOpts...)
	a.Programas = crud.NewController[entity.Programa](entity.ProgramaSchema{}, crudOpts...)

	if cfg.Store.Path != "" {
		if err := a.openStore(ctx); err != nil {
			_ = a.Close()
			return nil, err
		}
	}
	a.Log.WithFields(logrus.Fields{
		"store":     cfg.Store.Path,
		"strict":    cfg.CRUD.Strict,
		"areas":     a.Areas.Len(),
		"programas": a.Programas.Len(),
	}).Info("app ready")
	return a, nil
}

func (a *App) openStore(ctx context.Context) error {
	if err := database.RunMigrations(a.Config.Store.Path); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(a.Config.Store.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	a.db = db
	a.areaSnap = store.NewSnapshot[entity.Area](repository.NewAreaRepo(db), a.Areas, a.Log)
	a.progSnap = store.NewSnapshot[entity.Programa](repository.NewProgramaRepo(db), a.Programas, a.Log)
	if err := a.areaSnap.Restore(ctx); err != nil {
		return err
	}
	if err := a.progSnap.Restore(ctx); err != nil {
		return err
	}
	if a.Config.Store.Autosave {
		a.areaSnap.Attach(ctx, a.Bus)
		a.progSnap.Attach(ctx, a.Bus)
	}
	return nil
}

// Persistent reports whether a snapshot store is configured.
func (a *App) Persistent() bool { return a.db != nil }

// Save writes both collections to the store. It is a no-op without one.
func (a *App) Save(ctx context.Context) error {
	if a.db == nil {
		return nil
	}
	return errors.Join(a.areaSnap.Save(ctx), a.progSnap.Save(ctx))
}

// Model builds the TUI. Keybinding overrides are read from keybindingsPath;
// an unreadable file is logged and the defaults are used.
func (a *App) Model(keybindingsPath string) tui.Model {
	defaults := tui.DefaultKeyBindings()
	bindings := defaults
	if keybindingsPath != "" {
		overrides, err := config.LoadKeybindings(keybindingsPath, tui.DefaultKeybindingsByAction(defaults))
		if err != nil {
			a.Log.WithError(err).Warn("keybindings ignored")
		} else {
			bindings = tui.ApplyActionKeybindings(defaults, overrides)
		}
	}
	return tui.NewModel(
		[]tui.Tab{
			tabs.NewEntityTab("areas", a.Areas, a.Bus),
			tabs.NewEntityTab("programas", a.Programas, a.Bus),
		},
		tui.NewKeyRegistry(bindings),
		tui.WithUser(a.Config.UI.UserName),
	)
}

func (a *App) Close() error {
	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
		a.db = nil
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
		a.logFile = nil
	}
	return errors.Join(errs...)
}
