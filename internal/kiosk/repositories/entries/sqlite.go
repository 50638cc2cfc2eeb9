// Package entries persists operator submissions. Each row stores the full
// record document as JSON next to the extracted index columns; a record is
// immutable after insert except for its status and export stamp.
package entries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/dbx"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or
// *sql.Tx). Bulk operations are expected to run under dbx.WithTx.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, record *models.EntryRecord) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM entries WHERE id = ?)`, record.Id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check entry id: %w", err)
	}
	if exists {
		return fmt.Errorf("entry %s: %w", record.Id, common.ErrorConflict)
	}

	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode entry: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO entries (id, timestamp, area_id, status, doc) VALUES (?, ?, ?, ?, ?)`,
		record.Id, record.Timestamp, record.AreaId, string(record.Status), doc)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.EntryRecord, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `SELECT doc FROM entries WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entry %s: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	record := &models.EntryRecord{}
	if err := json.Unmarshal(raw, record); err != nil {
		return nil, fmt.Errorf("failed to decode entry %s: %w", id, err)
	}
	return record, nil
}

// Query runs as a single statement, so the result is one consistent
// snapshot even if another writer shows up between rows.
func (r *SQLiteRepository) Query(ctx context.Context, f Filter) ([]models.EntryRecord, error) {
	query := `SELECT doc FROM entries`
	var args []any
	if f.Status != nil {
		query += ` WHERE status = ?`
		args = append(args, string(*f.Status))
	}
	if f.Descending {
		query += ` ORDER BY timestamp DESC, id DESC`
	} else {
		query += ` ORDER BY timestamp ASC, id ASC`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.EntryRecord
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var record models.EntryRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("failed to decode entry: %w", err)
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) UpdateStatus(ctx context.Context, id string, status models.EntryStatus) error {
	record, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	record.Status = status
	return r.rewrite(ctx, record)
}

func (r *SQLiteRepository) StampExported(ctx context.Context, ids []string, stamp string) error {
	for _, id := range ids {
		record, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		record.ExportedAt = stamp
		if err := r.rewrite(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRepository) BulkDelete(ctx context.Context, ids []string) error {
	// Best-effort: ids that do not exist are simply skipped.
	for _, id := range ids {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete entry %s: %w", id, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) rewrite(ctx context.Context, record *models.EntryRecord) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode entry: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE entries SET timestamp = ?, area_id = ?, status = ?, doc = ? WHERE id = ?`,
		record.Timestamp, record.AreaId, string(record.Status), doc, record.Id)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	return nil
}
