package models

// EntryStatus is the review pipeline position of a submitted entry.
type EntryStatus string

const (
	StatusEntryPending EntryStatus = "entry_pending"
	StatusReady        EntryStatus = "ready"
	StatusBriefed      EntryStatus = "briefed"
	StatusEntered      EntryStatus = "entered"
	StatusDenied       EntryStatus = "denied"
)

// AllStatuses lists every valid status in pipeline order.
var AllStatuses = []EntryStatus{
	StatusEntryPending, StatusReady, StatusBriefed, StatusEntered, StatusDenied,
}

func (s EntryStatus) Valid() bool {
	switch s {
	case StatusEntryPending, StatusReady, StatusBriefed, StatusEntered, StatusDenied:
		return true
	}
	return false
}

// IsTerminal reports whether no further dashboard action is expected.
func (s EntryStatus) IsTerminal() bool {
	return s == StatusEntered || s == StatusDenied
}

// AllowedTransitions describes the normal review pipeline:
// entry_pending → ready → briefed → entered, with entered/denied reachable
// from ready or briefed directly, and denial possible at any non-terminal
// state. The map is advisory: administrators keep discretion, the store
// persists any status, and callers only use this to warn about unusual
// jumps (e.g. entered straight from entry_pending).
var AllowedTransitions = map[EntryStatus][]EntryStatus{
	StatusEntryPending: {StatusReady, StatusDenied},
	StatusReady:        {StatusBriefed, StatusEntered, StatusDenied},
	StatusBriefed:      {StatusEntered, StatusDenied},
	StatusEntered:      nil,
	StatusDenied:       nil,
}

// CanTransition reports whether from → to is part of the normal pipeline.
func CanTransition(from, to EntryStatus) bool {
	for _, next := range AllowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
