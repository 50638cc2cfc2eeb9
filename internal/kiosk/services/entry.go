// Package services implements the kiosk workflows on top of the store:
// operator submission, the admin review pipeline, and the admin PIN gate.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/hrakiosk/internal/badgex"
	"github.com/dmitrijs2005/hrakiosk/internal/common"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/session"
	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/store"
	"github.com/dmitrijs2005/hrakiosk/internal/logging"
	"github.com/google/uuid"
)

// SubmitInput carries the fields entered on the final review screen.
type SubmitInput struct {
	PlanningNote   string
	OverheadNeeded bool
	OverheadHeight string
}

// EntryService commits staged operator sessions into durable entry records.
type EntryService struct {
	store *store.Store
	log   logging.Logger
	now   func() time.Time
}

func NewEntryService(s *store.Store, log logging.Logger) *EntryService {
	return &EntryService{store: s, log: log, now: time.Now}
}

// Submit validates the staged session, creates the entry record, and clears
// the session. The session is cleared only after the insert commits; on any
// failure it is left intact so the operator can correct and retry.
func (s *EntryService) Submit(ctx context.Context, sess *session.Session, in SubmitInput) (*models.EntryRecord, error) {
	draft := sess.Draft()
	if draft == nil || draft.AreaId == "" {
		return nil, fmt.Errorf("%w: no area selected", common.ErrorValidation)
	}
	crew := sess.Crew()
	if crew == nil || len(crew.Badges) == 0 {
		return nil, fmt.Errorf("%w: no crew badges staged", common.ErrorValidation)
	}
	if crew.WorkRequest == "" {
		return nil, fmt.Errorf("%w: work request is required", common.ErrorValidation)
	}
	acks := sess.Acks()
	if acks == nil || !acks.All() {
		return nil, fmt.Errorf("%w: safety checklist incomplete", common.ErrorValidation)
	}

	masked := make([]string, 0, len(crew.Badges))
	hashed := make([]string, 0, len(crew.Badges))
	for _, badge := range crew.Badges {
		h, err := badgex.HashBadge(badge)
		if err != nil {
			return nil, fmt.Errorf("failed to hash badge: %w", err)
		}
		masked = append(masked, badgex.MaskBadge(badge))
		hashed = append(hashed, h)
	}

	ackSnapshot := *acks
	record := &models.EntryRecord{
		Id:                 uuid.NewString(),
		Timestamp:          s.now().UTC().Format(time.RFC3339),
		AreaId:             draft.AreaId,
		AreaName:           draft.AreaName,
		SpotX:              draft.SpotX,
		SpotY:              draft.SpotY,
		MapSnapshotDataUrl: draft.MapSnapshotDataUrl,
		Badges:             crew.Badges,
		BadgesMasked:       masked,
		BadgesHashed:       hashed,
		WorkRequest:        crew.WorkRequest,
		PlanningNote:       strings.TrimSpace(in.PlanningNote),
		OverheadNeeded:     in.OverheadNeeded,
		OverheadHeight:     strings.TrimSpace(in.OverheadHeight),
		Acks:               &ackSnapshot,
		Status:             models.StatusEntryPending,
	}

	if err := s.store.Entries.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	sess.UpdateDraft(nil)
	sess.ClearAcks()
	sess.ClearCrew()

	s.log.Info(ctx, "entry submitted",
		"id", record.Id, "area", record.AreaId, "crew", len(record.Badges))
	return record, nil
}
