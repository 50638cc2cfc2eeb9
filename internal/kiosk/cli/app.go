// Package cli wires the kiosk commands: operator submission, the admin
// review pipeline, export, and maintenance.
package cli

import (
	"context"

	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/config"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/services"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/store"
	"github.com/dmitrijs2005/hrakiosk/internal/logging"
)

// App carries the opened store and services between a command's setup and
// its run function.
type App struct {
	cfg   *config.Config
	log   logging.Logger
	store *store.Store
	gate  *services.AdminGate
	admin *services.AdminService
	entry *services.EntryService
}

func NewApp(log logging.Logger) *App {
	return &App{log: log}
}

// Open opens the configured database and constructs the services. Called
// once per invocation before the command body runs.
func (a *App) Open(ctx context.Context) error {
	st, err := store.Open(ctx, a.cfg.DatabasePath)
	if err != nil {
		return err
	}
	a.store = st
	a.gate = services.NewAdminGate(st, a.log)
	a.admin = services.NewAdminService(st, a.log)
	a.entry = services.NewEntryService(st, a.log)
	return nil
}

func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
