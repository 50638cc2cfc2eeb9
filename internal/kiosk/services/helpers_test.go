package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/session"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/store"
	"github.com/dmitrijs2005/hrakiosk/internal/logging"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, name string) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	st, err := store.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func allAcks() models.AckState {
	return models.AckState{
		RWP: true, Briefed: true, Dose: true,
		OnlyAreasBriefed: true, UseMapsForTripTicket: true, ContactRpForQuestions: true,
	}
}

// stagedSession builds a session ready to submit.
func stagedSession() *session.Session {
	sess := session.New()
	sess.UpdateDraft(&models.DraftEntry{AreaId: "CTMT_100", AreaName: "Containment 100'"})
	sess.SetCrew(models.CrewDraft{
		WorkRequest: "WR-1001",
		Badges:      []string{"12345678", "87654321"},
	})
	sess.SetAcks(allAcks())
	return sess
}

func insertEntry(t *testing.T, st *store.Store, id, timestamp string, status models.EntryStatus) {
	t.Helper()
	err := st.Entries.Insert(context.Background(), &models.EntryRecord{
		Id:           id,
		Timestamp:    timestamp,
		AreaId:       "CTMT_100",
		AreaName:     "Containment 100'",
		BadgesMasked: []string{"****5678"},
		WorkRequest:  "WR-1001",
		Status:       status,
	})
	require.NoError(t, err)
}
