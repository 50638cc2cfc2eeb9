// Package session holds the transient operator state staged across kiosk
// screens before a submission is committed. Nothing here is persisted: a
// Session is created at startup and passed by reference to whichever stage
// needs it.
package session

import (
	"strings"

	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/models"
)

// Session aggregates the three staged slices of an in-progress submission:
// the checklist acknowledgements, the crew draft, and the entry draft.
// All three are cleared together, once, right after a successful commit;
// a failed commit leaves them intact so the operator can retry.
type Session struct {
	acks  *models.AckState
	crew  *models.CrewDraft
	draft *models.DraftEntry
}

func New() *Session {
	return &Session{}
}

// SetAcks records the checklist answers for this session.
func (s *Session) SetAcks(acks models.AckState) {
	snapshot := acks
	s.acks = &snapshot
}

// Acks returns the staged checklist answers, or nil until the checklist
// screen completes.
func (s *Session) Acks() *models.AckState {
	return s.acks
}

func (s *Session) ClearAcks() {
	s.acks = nil
}

// SetCrew stages the work request and badge list. Badges are normalized:
// trimmed, empties dropped, and duplicates within this one add collapsed
// (first occurrence wins).
func (s *Session) SetCrew(crew models.CrewDraft) {
	seen := make(map[string]struct{}, len(crew.Badges))
	badges := make([]string, 0, len(crew.Badges))
	for _, badge := range crew.Badges {
		badge = strings.TrimSpace(badge)
		if badge == "" {
			continue
		}
		if _, ok := seen[badge]; ok {
			continue
		}
		seen[badge] = struct{}{}
		badges = append(badges, badge)
	}
	s.crew = &models.CrewDraft{
		WorkRequest: strings.TrimSpace(crew.WorkRequest),
		Badges:      badges,
	}
}

func (s *Session) Crew() *models.CrewDraft {
	return s.crew
}

func (s *Session) ClearCrew() {
	s.crew = nil
}

// UpdateDraft shallow-merges the partial into the current draft: set fields
// overwrite, unset fields keep their staged value. Passing nil clears the
// draft entirely.
func (s *Session) UpdateDraft(partial *models.DraftEntry) {
	if partial == nil {
		s.draft = nil
		return
	}
	if s.draft == nil {
		s.draft = &models.DraftEntry{}
	}
	if partial.AreaId != "" {
		s.draft.AreaId = partial.AreaId
	}
	if partial.AreaName != "" {
		s.draft.AreaName = partial.AreaName
	}
	if partial.SpotX != nil {
		s.draft.SpotX = partial.SpotX
	}
	if partial.SpotY != nil {
		s.draft.SpotY = partial.SpotY
	}
	if partial.MapSnapshotDataUrl != "" {
		s.draft.MapSnapshotDataUrl = partial.MapSnapshotDataUrl
	}
}

func (s *Session) Draft() *models.DraftEntry {
	return s.draft
}
