// Package areas persists the map-area collection. Each row stores the full
// area document as JSON next to the extracted index columns.
package areas

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
// *sql.Tx), so callers can compose multi-row operations in one transaction.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, area *models.Area) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM areas WHERE id = ?)`, area.Id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check area id: %w", err)
	}
	if exists {
		return fmt.Errorf("area %s: %w", area.Id, common.ErrorConflict)
	}

	doc, err := json.Marshal(area)
	if err != nil {
		return fmt.Errorf("failed to encode area: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO areas (id, name, category, doc) VALUES (?, ?, ?, ?)`,
		area.Id, area.Name, string(area.ResolvedCategory()), doc)
	if err != nil {
		return fmt.Errorf("failed to insert area: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Area, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `SELECT doc FROM areas WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("area %s: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	area := &models.Area{}
	if err := json.Unmarshal(raw, area); err != nil {
		return nil, fmt.Errorf("failed to decode area %s: %w", id, err)
	}
	return area, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Area, error) {
	return r.scan(ctx, `SELECT doc FROM areas ORDER BY id`)
}

func (r *SQLiteRepository) GetByCategory(ctx context.Context, category models.AreaCategory) ([]models.Area, error) {
	return r.scan(ctx, `SELECT doc FROM areas WHERE category = ? ORDER BY id`, string(category))
}

func (r *SQLiteRepository) scan(ctx context.Context, query string, args ...any) ([]models.Area, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select areas: %w", err)
	}
	defer rows.Close()

	var result []models.Area
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var area models.Area
		if err := json.Unmarshal(raw, &area); err != nil {
			return nil, fmt.Errorf("failed to decode area: %w", err)
		}
		result = append(result, area)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id string, patch AreaPatch) error {
	area, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if patch.Name != nil {
		area.Name = *patch.Name
	}
	if patch.Category != nil {
		area.Category = *patch.Category
	}
	if patch.MapPath != nil {
		area.MapPath = *patch.MapPath
	}

	doc, err := json.Marshal(area)
	if err != nil {
		return fmt.Errorf("failed to encode area: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE areas SET name = ?, category = ?, doc = ? WHERE id = ?`,
		area.Name, string(area.ResolvedCategory()), doc, id)
	if err != nil {
		return fmt.Errorf("failed to update area: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	// Idempotent: deleting an id that is already gone is not an error.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM areas WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM areas`); err != nil {
		return fmt.Errorf("failed to clear areas: %w", err)
	}
	return nil
}
