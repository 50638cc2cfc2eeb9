package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/export"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/repositories/areas"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/repositories/entries"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/seed"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/store"
	"github.com/dmitrijs2005/hrakiosk/internal/logging"
	"github.com/google/uuid"
)

// AdminService implements the review dashboard operations: the status
// pipeline, area management, export, and retention.
type AdminService struct {
	store *store.Store
	log   logging.Logger
	now   func() time.Time
}

func NewAdminService(s *store.Store, log logging.Logger) *AdminService {
	return &AdminService{store: s, log: log, now: time.Now}
}

// MarkStatus persists a new status on an entry. Any valid status is
// accepted from any current status; AllowedTransitions is advisory and
// callers surface their own warning for unusual jumps.
func (s *AdminService) MarkStatus(ctx context.Context, id string, status models.EntryStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", common.ErrorValidation, status)
	}
	if err := s.store.UpdateEntryStatus(ctx, id, status); err != nil {
		return err
	}
	s.log.Info(ctx, "entry status changed", "id", id, "status", status)
	return nil
}

// Queue returns entries awaiting first review, newest first.
func (s *AdminService) Queue(ctx context.Context) ([]models.EntryRecord, error) {
	pending := models.StatusEntryPending
	return s.store.Entries.Query(ctx, entries.Filter{Status: &pending, Descending: true})
}

// List returns entries matching the filter.
func (s *AdminService) List(ctx context.Context, f entries.Filter) ([]models.EntryRecord, error) {
	return s.store.Entries.Query(ctx, f)
}

// GetEntry returns one entry record.
func (s *AdminService) GetEntry(ctx context.Context, id string) (*models.EntryRecord, error) {
	return s.store.Entries.GetByID(ctx, id)
}

// CreateArea adds a new area. An empty category resolves to CTMT and an
// empty map path resolves to the placeholder image. The generated id is
// prefixed with the category so seed files and hand-created rows sort
// together.
func (s *AdminService) CreateArea(ctx context.Context, name string, category models.AreaCategory, mapPath string) (*models.Area, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: area name is required", common.ErrorValidation)
	}
	if category == "" {
		category = models.CategoryCTMT
	}
	if category != models.CategoryCTMT && category != models.CategoryRHR {
		return nil, fmt.Errorf("%w: unknown area category %q", common.ErrorValidation, category)
	}
	mapPath = strings.TrimSpace(mapPath)
	if mapPath == "" {
		mapPath = models.PlaceholderMapPath
	}

	area := &models.Area{
		Id:       fmt.Sprintf("%s_%s", strings.ToLower(string(category)), uuid.NewString()),
		Name:     name,
		Category: category,
		MapPath:  mapPath,
	}
	if err := s.store.Areas.Insert(ctx, area); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "area created", "id", area.Id, "category", area.Category)
	return area, nil
}

// UpdateAreaMap points an existing area at a new map image.
func (s *AdminService) UpdateAreaMap(ctx context.Context, id, mapPath string) error {
	mapPath = strings.TrimSpace(mapPath)
	if mapPath == "" {
		mapPath = models.PlaceholderMapPath
	}
	return s.store.UpdateArea(ctx, id, areas.AreaPatch{MapPath: &mapPath})
}

// DeleteArea removes an area. Existing entries keep their snapshotted
// areaId and areaName and are unaffected.
func (s *AdminService) DeleteArea(ctx context.Context, id string) error {
	return s.store.Areas.DeleteByID(ctx, id)
}

// Seed replaces the whole areas collection with the parsed seed document
// and returns the number of areas loaded.
func (s *AdminService) Seed(ctx context.Context, data []byte) (int, error) {
	list, err := seed.Load(data)
	if err != nil {
		return 0, err
	}
	if err := s.store.ReplaceAreas(ctx, list); err != nil {
		return 0, err
	}
	s.log.Info(ctx, "areas seeded", "count", len(list))
	return len(list), nil
}

// ClearEntries removes every entry record. Areas and metadata are kept.
func (s *AdminService) ClearEntries(ctx context.Context) error {
	if err := s.store.Entries.Clear(ctx); err != nil {
		return err
	}
	s.log.Warn(ctx, "all entries cleared")
	return nil
}

// Purge deletes entries strictly older than the retention window and
// returns the number removed. days <= 0 disables retention and is a no-op.
// Records whose timestamp does not parse are kept; an unreadable stamp is
// not a reason to destroy an audit row.
func (s *AdminService) Purge(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		return 0, nil
	}
	cutoff := s.now().UTC().Add(-time.Duration(days) * 24 * time.Hour)

	all, err := s.store.Entries.Query(ctx, entries.Filter{})
	if err != nil {
		return 0, err
	}
	var expired []string
	for i := range all {
		ts, err := time.Parse(time.RFC3339, all[i].Timestamp)
		if err != nil {
			s.log.Warn(ctx, "purge skipping unparseable timestamp",
				"id", all[i].Id, "timestamp", all[i].Timestamp)
			continue
		}
		if ts.Before(cutoff) {
			expired = append(expired, all[i].Id)
		}
	}
	if len(expired) == 0 {
		return 0, nil
	}
	if err := s.store.DeleteEntries(ctx, expired); err != nil {
		return 0, err
	}
	s.log.Info(ctx, "expired entries purged", "count", len(expired), "days", days)
	return len(expired), nil
}

// Export serializes the matching entries and stamps each with the export
// time. The stamp lands in the store before the bytes are returned, so a
// record in the output is always marked exported; the stamp is overwritten
// if the same record is exported again.
func (s *AdminService) Export(ctx context.Context, f entries.Filter, format export.Format) ([]byte, int, error) {
	records, err := s.store.Entries.Query(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	stamp := s.now().UTC().Format(time.RFC3339)
	if len(records) > 0 {
		ids := make([]string, len(records))
		for i := range records {
			ids[i] = records[i].Id
		}
		if err := s.store.StampExported(ctx, ids, stamp); err != nil {
			return nil, 0, err
		}
		for i := range records {
			records[i].ExportedAt = stamp
		}
	}
	out, err := export.Render(records, format)
	if err != nil {
		return nil, 0, err
	}
	s.log.Info(ctx, "entries exported", "count", len(records), "format", format)
	return out, len(records), nil
}

// Areas returns every area, or only one category when given.
func (s *AdminService) Areas(ctx context.Context, category models.AreaCategory) ([]models.Area, error) {
	if category == "" {
		return s.store.Areas.GetAll(ctx)
	}
	return s.store.Areas.GetByCategory(ctx, category)
}
