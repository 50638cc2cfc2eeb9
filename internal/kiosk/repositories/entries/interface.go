package entries

import (
	"context"

	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
)

// Filter narrows a Query. The zero value is a full scan in ascending
// timestamp order.
type Filter struct {
	// Status limits the scan to entries with exactly this status.
	Status *models.EntryStatus

	// Descending flips the timestamp ordering (newest first).
	Descending bool
}

// Repository describes the operations over the entries collection.
// Insert is the sole creation path for entry records.
type Repository interface {
	// Insert adds a new entry record. A duplicate id fails with
	// common.ErrorConflict.
	Insert(ctx context.Context, record *models.EntryRecord) error

	// GetByID returns one record, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.EntryRecord, error)

	// Query returns the matching records as one stable snapshot.
	Query(ctx context.Context, f Filter) ([]models.EntryRecord, error)

	// UpdateStatus persists a new status, or fails with
	// common.ErrorNotFound. Transition legality is not checked here; that
	// lives with the admin-facing caller.
	UpdateStatus(ctx context.Context, id string, status models.EntryStatus) error

	// StampExported overwrites exportedAt on each listed record.
	StampExported(ctx context.Context, ids []string, stamp string) error

	// BulkDelete removes the listed records; nonexistent ids are ignored.
	BulkDelete(ctx context.Context, ids []string) error

	// Clear removes every entry record.
	Clear(ctx context.Context) error
}
