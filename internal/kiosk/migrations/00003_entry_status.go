package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upEntryStatus, downEntryStatus)
}

// upEntryStatus backfills the review status on entries created before the
// pipeline existed. The area category backfill runs again for stores that
// skipped it.
func upEntryStatus(ctx context.Context, tx *sql.Tx) error {
	if err := migrateDocs(ctx, tx, "areas", backfillAreaCategory); err != nil {
		return err
	}
	return migrateDocs(ctx, tx, "entries", backfillEntryStatus)
}

func downEntryStatus(ctx context.Context, tx *sql.Tx) error {
	return nil
}

func backfillEntryStatus(doc map[string]any) (bool, error) {
	if isFalsy(doc["status"]) {
		doc["status"] = "entry_pending"
		return true, nil
	}
	return false, nil
}
