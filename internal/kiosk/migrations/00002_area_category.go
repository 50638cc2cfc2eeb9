package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAreaCategory, downAreaCategory)
}

// upAreaCategory introduces the category index field on areas and backfills
// documents written before the field existed.
func upAreaCategory(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx,
		`ALTER TABLE areas ADD COLUMN category TEXT NOT NULL DEFAULT ''`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`CREATE INDEX idx_areas_category ON areas(category)`); err != nil {
		return err
	}
	return migrateDocs(ctx, tx, "areas", backfillAreaCategory)
}

func downAreaCategory(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP INDEX idx_areas_category`); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `ALTER TABLE areas DROP COLUMN category`)
	return err
}

func backfillAreaCategory(doc map[string]any) (bool, error) {
	if isFalsy(doc["category"]) {
		doc["category"] = "CTMT"
		return true, nil
	}
	return false, nil
}
