package areas

import (
	"context"

	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
)

// AreaPatch is a merge-only partial update. Nil fields are left untouched;
// there is no field removal through this path and the id never changes.
type AreaPatch struct {
	Name     *string
	Category *models.AreaCategory
	MapPath  *string
}

// Repository describes CRUD operations over the areas collection.
type Repository interface {
	// Insert adds a new area. A duplicate id fails with common.ErrorConflict.
	Insert(ctx context.Context, area *models.Area) error

	// GetByID returns one area, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Area, error)

	// GetAll returns every area in primary-key order.
	GetAll(ctx context.Context) ([]models.Area, error)

	// GetByCategory returns areas whose resolved category matches.
	GetByCategory(ctx context.Context, category models.AreaCategory) ([]models.Area, error)

	// Update merges the patch into an existing area, or fails with
	// common.ErrorNotFound.
	Update(ctx context.Context, id string, patch AreaPatch) error

	// DeleteByID removes an area. Deleting a nonexistent id is not an error.
	DeleteByID(ctx context.Context, id string) error

	// Clear removes every area.
	Clear(ctx context.Context) error
}
