// Package store opens the kiosk database, brings it to the current schema
// version, and bundles the collection repositories behind one handle.
//
// A Store is constructed once at startup and injected into the services
// that need it; there are no package-level singletons.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/dbx"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/migrations"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/repositories/areas"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/repositories/entries"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/repositories/metadata"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Store is the durable local data layer handle.
type Store struct {
	DB       *sql.DB
	Areas    areas.Repository
	Entries  entries.Repository
	Metadata metadata.Repository
}

// RunMigrations applies every pending schema version in ascending order,
// one transaction per version. goose serializes the steps: version N+1
// never starts before version N has committed.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the SQLite database at dsn and brings
// it to the current schema version. A failed upgrade refuses the open: the
// application must never run against a half-upgraded store. The upgrade is
// retried on the next Open, since the failed version's transaction rolled
// back completely.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// The kiosk is single-user; one connection keeps SQLite happy and makes
	// every read a stable snapshot relative to writes.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrorMigration, err)
	}

	return &Store{
		DB:       db,
		Areas:    areas.NewSQLiteRepository(db),
		Entries:  entries.NewSQLiteRepository(db),
		Metadata: metadata.NewSQLiteRepository(db),
	}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

// ReplaceAreas clears the areas collection and inserts the given list in
// one transaction: either every row lands or none do. Entries are never
// touched (they snapshot areaId/areaName and do not join live rows).
func (s *Store) ReplaceAreas(ctx context.Context, list []models.Area) error {
	return dbx.WithTx(ctx, s.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := areas.NewSQLiteRepository(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		for i := range list {
			if err := repo.Insert(ctx, &list[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateArea merges a patch into an existing area atomically.
func (s *Store) UpdateArea(ctx context.Context, id string, patch areas.AreaPatch) error {
	return dbx.WithTx(ctx, s.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return areas.NewSQLiteRepository(tx).Update(ctx, id, patch)
	})
}

// UpdateEntryStatus persists a new status atomically. Any status value is
// accepted; transition legality lives with the admin-facing caller.
func (s *Store) UpdateEntryStatus(ctx context.Context, id string, status models.EntryStatus) error {
	return dbx.WithTx(ctx, s.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return entries.NewSQLiteRepository(tx).UpdateStatus(ctx, id, status)
	})
}

// StampExported overwrites exportedAt on every listed record in one
// transaction, so an export batch is stamped all-or-nothing.
func (s *Store) StampExported(ctx context.Context, ids []string, stamp string) error {
	return dbx.WithTx(ctx, s.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return entries.NewSQLiteRepository(tx).StampExported(ctx, ids, stamp)
	})
}

// DeleteEntries removes the listed records in one transaction; ids that do
// not exist are ignored.
func (s *Store) DeleteEntries(ctx context.Context, ids []string) error {
	return dbx.WithTx(ctx, s.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return entries.NewSQLiteRepository(tx).BulkDelete(ctx, ids)
	})
}
