package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upWorkRequest, downWorkRequest)
}

// upWorkRequest renames the legacy workOrder field to workRequest. The copy
// only happens when the new field is absent and the legacy one present; the
// legacy field is deleted after the copy.
func upWorkRequest(ctx context.Context, tx *sql.Tx) error {
	return migrateDocs(ctx, tx, "entries", func(doc map[string]any) (bool, error) {
		changed, err := backfillEntryStatus(doc)
		if err != nil {
			return false, err
		}
		if isFalsy(doc["workRequest"]) && !isFalsy(doc["workOrder"]) {
			doc["workRequest"] = doc["workOrder"]
			delete(doc, "workOrder")
			changed = true
		}
		return changed, nil
	})
}

func downWorkRequest(ctx context.Context, tx *sql.Tx) error {
	return nil
}
