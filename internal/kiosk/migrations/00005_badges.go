package migrations

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/hrakiosk/internal/badgex"
	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upBadges, downBadges)
}

// upBadges reconciles the raw and masked badge lists on legacy entries.
//
// Rows from the masked-only flow get an approximate raw list rebuilt by
// stripping mask characters (lossy: only the retained suffix survives).
// Rows with raw badges but no masked list get one computed with the current
// masking rule. The unused leadBadge field is dropped.
func upBadges(ctx context.Context, tx *sql.Tx) error {
	return migrateDocs(ctx, tx, "entries", func(doc map[string]any) (bool, error) {
		changed := false

		if !isList(doc["badges"]) {
			rebuilt := []string{}
			for _, masked := range strList(doc["badgesMasked"]) {
				raw := strings.ReplaceAll(masked, badgex.MaskChar, "")
				if raw != "" {
					rebuilt = append(rebuilt, raw)
				}
			}
			doc["badges"] = rebuilt
			changed = true
		}

		if !isList(doc["badgesMasked"]) && isList(doc["badges"]) {
			masked := []string{}
			for _, raw := range strList(doc["badges"]) {
				masked = append(masked, badgex.MaskBadge(raw))
			}
			doc["badgesMasked"] = masked
			changed = true
		}

		if _, ok := doc["leadBadge"]; ok {
			delete(doc, "leadBadge")
			changed = true
		}

		return changed, nil
	})
}

func downBadges(ctx context.Context, tx *sql.Tx) error {
	return nil
}
