package models

// AckState is the safety-briefing checklist snapshot. It is staged once per
// operator session and stored on the entry record for audit; it is never
// edited after the record is created.
type AckState struct {
	RWP                   bool `json:"rwp"`
	Briefed               bool `json:"briefed"`
	Dose                  bool `json:"dose"`
	OnlyAreasBriefed      bool `json:"onlyAreasBriefed"`
	UseMapsForTripTicket  bool `json:"useMapsForTripTicket"`
	ContactRpForQuestions bool `json:"contactRpForQuestions"`
}

// All reports whether every checklist item was acknowledged.
func (a AckState) All() bool {
	return a.RWP && a.Briefed && a.Dose && a.OnlyAreasBriefed &&
		a.UseMapsForTripTicket && a.ContactRpForQuestions
}

// CrewDraft is the staged work request and badge list.
type CrewDraft struct {
	WorkRequest string
	Badges      []string
}

// DraftEntry is the partial entry accumulated across kiosk screens:
// area selection, optional pin placement, optional snapshot capture.
type DraftEntry struct {
	AreaId             string
	AreaName           string
	SpotX              *float64
	SpotY              *float64
	MapSnapshotDataUrl string
}

// EntryRecord is one operator submission and its review status.
//
// Snapshot fields (area, pin, crew, acks) are captured at submission time
// and never re-derived. After creation only Status and ExportedAt change.
// BadgesMasked[i] and BadgesHashed[i] correspond to Badges[i]; Badges may be
// empty on rows recovered from the legacy masked-only flow.
type EntryRecord struct {
	Id        string `json:"id"`
	Timestamp string `json:"timestamp"`

	AreaId             string   `json:"areaId"`
	AreaName           string   `json:"areaName"`
	SpotX              *float64 `json:"spotX,omitempty"`
	SpotY              *float64 `json:"spotY,omitempty"`
	MapSnapshotDataUrl string   `json:"mapSnapshotDataUrl,omitempty"`

	Badges       []string `json:"badges,omitempty"`
	BadgesMasked []string `json:"badgesMasked,omitempty"`
	BadgesHashed []string `json:"badgesHashed,omitempty"`
	WorkRequest  string   `json:"workRequest,omitempty"`
	PlanningNote string   `json:"planningNote,omitempty"`

	OverheadNeeded bool   `json:"overheadNeeded,omitempty"`
	OverheadHeight string `json:"overheadHeight,omitempty"`

	Acks *AckState `json:"acks,omitempty"`

	Status EntryStatus `json:"status"`

	// ExportedAt is set each time the record lands in an export batch and
	// overwritten by later exports. Empty means never exported.
	ExportedAt string `json:"exportedAt,omitempty"`
}
