package migrations

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// rowTransform mutates one decoded document. It returns true when the
// document changed and must be written back.
type rowTransform func(doc map[string]any) (changed bool, err error)

// migrateDocs applies fn to every document in table, rewriting changed rows
// together with their extracted index columns. Any error (including a
// document that fails to decode) aborts the caller's migration, and with it
// the whole version's transaction.
func migrateDocs(ctx context.Context, tx *sql.Tx, table string, fn rowTransform) error {
	type row struct {
		id  string
		doc map[string]any
	}

	rows, err := tx.QueryContext(ctx, `SELECT id, doc FROM `+table)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", table, err)
	}
	defer rows.Close()

	var pending []row
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return err
		}
		doc := map[string]any{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("decoding %s row %s: %w", table, id, err)
		}
		changed, err := fn(doc)
		if err != nil {
			return fmt.Errorf("transforming %s row %s: %w", table, id, err)
		}
		if changed {
			pending = append(pending, row{id: id, doc: doc})
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if err := rows.Close(); err != nil {
		return err
	}

	for _, r := range pending {
		raw, err := json.Marshal(r.doc)
		if err != nil {
			return fmt.Errorf("encoding %s row %s: %w", table, r.id, err)
		}
		if err := writeDoc(ctx, tx, table, r.id, r.doc, raw); err != nil {
			return err
		}
	}
	return nil
}

// writeDoc stores the document and keeps the table's index columns in sync
// with it.
func writeDoc(ctx context.Context, tx *sql.Tx, table, id string, doc map[string]any, raw []byte) error {
	var err error
	switch table {
	case "areas":
		_, err = tx.ExecContext(ctx,
			`UPDATE areas SET name = ?, category = ?, doc = ? WHERE id = ?`,
			str(doc["name"]), str(doc["category"]), raw, id)
	case "entries":
		_, err = tx.ExecContext(ctx,
			`UPDATE entries SET timestamp = ?, area_id = ?, status = ?, doc = ? WHERE id = ?`,
			str(doc["timestamp"]), str(doc["areaId"]), str(doc["status"]), raw, id)
	default:
		err = fmt.Errorf("unknown table %q", table)
	}
	if err != nil {
		return fmt.Errorf("updating %s row %s: %w", table, id, err)
	}
	return nil
}

// isFalsy mirrors the loose "is the field absent or falsy" check legacy
// documents were written against: nil, "", false and 0 all count as unset.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	}
	return false
}

// isList reports whether the field is a JSON array (decoded or rewritten).
func isList(v any) bool {
	switch v.(type) {
	case []any, []string:
		return true
	}
	return false
}

// str renders a document field as a string for an index column.
func str(v any) string {
	s, _ := v.(string)
	return s
}

// strList extracts the string elements of a JSON array field.
func strList(v any) []string {
	if ss, ok := v.([]string); ok {
		return ss
	}
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
