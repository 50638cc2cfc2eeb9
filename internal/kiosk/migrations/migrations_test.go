package migrations

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openAt(t *testing.T, name string, version int64) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.UpToContext(context.Background(), db, ".", version))
	return db
}

func insertDoc(t *testing.T, db *sql.DB, table, id string, doc map[string]any) {
	t.Helper()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	switch table {
	case "areas":
		_, err = db.Exec(`INSERT INTO areas (id, name, doc) VALUES (?, ?, ?)`,
			id, doc["name"], raw)
	case "entries":
		_, err = db.Exec(`INSERT INTO entries (id, doc) VALUES (?, ?)`, id, raw)
	}
	require.NoError(t, err)
}

func readDoc(t *testing.T, db *sql.DB, table, id string) map[string]any {
	t.Helper()
	var raw []byte
	err := db.QueryRow(`SELECT doc FROM `+table+` WHERE id = ?`, id).Scan(&raw)
	require.NoError(t, err)
	doc := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestUp_TransformsLegacyDocs(t *testing.T) {
	ctx := context.Background()
	db := openAt(t, "mig_legacy", 1)

	insertDoc(t, db, "areas", "CTMT_100", map[string]any{
		"id": "CTMT_100", "name": "Containment 100'",
	})
	insertDoc(t, db, "entries", "e-masked-only", map[string]any{
		"id":           "e-masked-only",
		"timestamp":    "2024-06-01T10:00:00Z",
		"areaId":       "CTMT_100",
		"workOrder":    "WO-77",
		"badgesMasked": []string{"****5678", "1234"},
		"leadBadge":    "12345678",
	})
	insertDoc(t, db, "entries", "e-raw-only", map[string]any{
		"id":        "e-raw-only",
		"timestamp": "2024-06-02T10:00:00Z",
		"areaId":    "CTMT_100",
		"badges":    []string{"12345678"},
	})

	require.NoError(t, goose.UpContext(ctx, db, "."))

	area := readDoc(t, db, "areas", "CTMT_100")
	assert.Equal(t, "CTMT", area["category"], "legacy areas get the default category")

	var col string
	require.NoError(t, db.QueryRow(`SELECT category FROM areas WHERE id = 'CTMT_100'`).Scan(&col))
	assert.Equal(t, "CTMT", col, "index column tracks the document")

	masked := readDoc(t, db, "entries", "e-masked-only")
	assert.Equal(t, "entry_pending", masked["status"])
	assert.Equal(t, "WO-77", masked["workRequest"])
	assert.NotContains(t, masked, "workOrder")
	assert.NotContains(t, masked, "leadBadge")
	assert.Equal(t, []any{"5678", "1234"}, masked["badges"],
		"raw list rebuilt from the masked suffixes")

	raw := readDoc(t, db, "entries", "e-raw-only")
	assert.Equal(t, []any{"****5678"}, raw["badgesMasked"],
		"masked list computed from the raw badges")
	assert.Equal(t, "entry_pending", raw["status"])

	require.NoError(t, db.QueryRow(`SELECT status FROM entries WHERE id = 'e-raw-only'`).Scan(&col))
	assert.Equal(t, "entry_pending", col)
}

func TestUp_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openAt(t, "mig_idempotent", 1)

	insertDoc(t, db, "entries", "e-1", map[string]any{
		"id": "e-1", "timestamp": "2024-06-01T10:00:00Z", "areaId": "CTMT_100",
		"workOrder": "WO-1", "badgesMasked": []string{"****5678"},
	})

	require.NoError(t, goose.UpContext(ctx, db, "."))
	first := readDoc(t, db, "entries", "e-1")

	// Re-running is a no-op: the version table already records every step.
	require.NoError(t, goose.UpContext(ctx, db, "."))
	assert.Equal(t, first, readDoc(t, db, "entries", "e-1"))
}

func TestUp_CorruptDocFailsWholeVersionAndRetries(t *testing.T) {
	ctx := context.Background()
	db := openAt(t, "mig_corrupt", 1)

	_, err := db.Exec(`INSERT INTO areas (id, name, doc) VALUES ('bad', 'Bad', 'not json')`)
	require.NoError(t, err)
	insertDoc(t, db, "areas", "good", map[string]any{"id": "good", "name": "Good"})

	require.Error(t, goose.UpContext(ctx, db, "."))

	version, err := goose.GetDBVersionContext(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version, "the failed version rolled back completely")

	good := readDoc(t, db, "areas", "good")
	assert.NotContains(t, good, "category", "no partial transform may survive the rollback")

	// Fixing the corrupt row lets the same upgrade succeed on retry.
	fixed, err := json.Marshal(map[string]any{"id": "bad", "name": "Bad"})
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE areas SET doc = ? WHERE id = 'bad'`, fixed)
	require.NoError(t, err)

	require.NoError(t, goose.UpContext(ctx, db, "."))
	assert.Equal(t, "CTMT", readDoc(t, db, "areas", "good")["category"])
	assert.Equal(t, "CTMT", readDoc(t, db, "areas", "bad")["category"])
}
