package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/repositories/areas"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/repositories/entries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, name string) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	st, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func entryFixture(id, timestamp string, status models.EntryStatus) *models.EntryRecord {
	return &models.EntryRecord{
		Id:           id,
		Timestamp:    timestamp,
		AreaId:       "CTMT_100",
		AreaName:     "Containment 100'",
		BadgesMasked: []string{"****5678"},
		WorkRequest:  "WR-1001",
		Status:       status,
	}
}

func TestOpen_RunsMigrations(t *testing.T) {
	st := newTestStore(t, "store_open")

	// All tables exist and are empty on a fresh database.
	all, err := st.Areas.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	records, err := st.Entries.Query(context.Background(), entries.Filter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestEntries_InsertConflict(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, "store_conflict")

	require.NoError(t, st.Entries.Insert(ctx, entryFixture("e-1", "2026-02-01T10:00:00Z", models.StatusEntryPending)))
	err := st.Entries.Insert(ctx, entryFixture("e-1", "2026-02-02T10:00:00Z", models.StatusEntryPending))
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestEntries_QueryFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, "store_query")

	require.NoError(t, st.Entries.Insert(ctx, entryFixture("e-b", "2026-02-02T10:00:00Z", models.StatusEntryPending)))
	require.NoError(t, st.Entries.Insert(ctx, entryFixture("e-a", "2026-02-01T10:00:00Z", models.StatusEntered)))
	require.NoError(t, st.Entries.Insert(ctx, entryFixture("e-c", "2026-02-03T10:00:00Z", models.StatusEntryPending)))

	all, err := st.Entries.Query(ctx, entries.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "e-a", all[0].Id, "ascending timestamp by default")
	assert.Equal(t, "e-c", all[2].Id)

	pending := models.StatusEntryPending
	newest, err := st.Entries.Query(ctx, entries.Filter{Status: &pending, Descending: true})
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, "e-c", newest[0].Id)
	assert.Equal(t, "e-b", newest[1].Id)
}

func TestUpdateEntryStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, "store_status")

	require.NoError(t, st.Entries.Insert(ctx, entryFixture("e-1", "2026-02-01T10:00:00Z", models.StatusEntryPending)))

	require.NoError(t, st.UpdateEntryStatus(ctx, "e-1", models.StatusReady))
	got, err := st.Entries.GetByID(ctx, "e-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusReady, got.Status)

	err = st.UpdateEntryStatus(ctx, "missing", models.StatusReady)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeleteEntries_IgnoresMissingIds(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, "store_delete")

	require.NoError(t, st.Entries.Insert(ctx, entryFixture("e-1", "2026-02-01T10:00:00Z", models.StatusEntered)))

	require.NoError(t, st.DeleteEntries(ctx, []string{"e-1", "never-existed"}))

	_, err := st.Entries.GetByID(ctx, "e-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestStampExported_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, "store_stamp")

	require.NoError(t, st.Entries.Insert(ctx, entryFixture("e-1", "2026-02-01T10:00:00Z", models.StatusEntered)))

	require.NoError(t, st.StampExported(ctx, []string{"e-1"}, "2026-02-10T12:00:00Z"))
	got, err := st.Entries.GetByID(ctx, "e-1")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-10T12:00:00Z", got.ExportedAt)

	// A missing id rolls back the whole batch, including e-1's new stamp.
	err = st.StampExported(ctx, []string{"e-1", "missing"}, "2026-02-11T12:00:00Z")
	require.ErrorIs(t, err, common.ErrorNotFound)
	got, err = st.Entries.GetByID(ctx, "e-1")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-10T12:00:00Z", got.ExportedAt)
}

func TestReplaceAreas_Atomic(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, "store_replace")

	require.NoError(t, st.Areas.Insert(ctx, &models.Area{Id: "old", Name: "Old Area"}))

	// A duplicate id in the new list fails the insert and must keep the
	// previous collection intact.
	err := st.ReplaceAreas(ctx, []models.Area{
		{Id: "dup", Name: "First"},
		{Id: "dup", Name: "Second"},
	})
	require.ErrorIs(t, err, common.ErrorConflict)
	_, err = st.Areas.GetByID(ctx, "old")
	assert.NoError(t, err)

	require.NoError(t, st.ReplaceAreas(ctx, []models.Area{
		{Id: "CTMT_100", Name: "Containment 100'"},
		{Id: "RHR_A", Name: "RHR Pump Room A", Category: models.CategoryRHR},
	}))
	_, err = st.Areas.GetByID(ctx, "old")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	rhr, err := st.Areas.GetByCategory(ctx, models.CategoryRHR)
	require.NoError(t, err)
	require.Len(t, rhr, 1)
	assert.Equal(t, "RHR_A", rhr[0].Id)
}

func TestUpdateArea_MergesPatch(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, "store_area_patch")

	require.NoError(t, st.Areas.Insert(ctx, &models.Area{Id: "CTMT_100", Name: "Containment 100'"}))

	mapPath := "/maps/ctmt_100.svg"
	require.NoError(t, st.UpdateArea(ctx, "CTMT_100", areas.AreaPatch{MapPath: &mapPath}))

	got, err := st.Areas.GetByID(ctx, "CTMT_100")
	require.NoError(t, err)
	assert.Equal(t, "Containment 100'", got.Name, "unset patch fields stay put")
	assert.Equal(t, mapPath, got.MapPath)
}

func TestMetadata_AbsentKeyIsNil(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t, "store_meta")

	v, err := st.Metadata.Get(ctx, "nothing")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, st.Metadata.Set(ctx, "k", []byte("v1")))
	require.NoError(t, st.Metadata.Set(ctx, "k", []byte("v2")))
	v, err = st.Metadata.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}
