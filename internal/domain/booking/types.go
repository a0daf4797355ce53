package booking

import "strings"

// State is the lifecycle status persisted by the backend. Expiry is derived
// from the clock and never stored here.
type State string

const (
	StateActive    State = "active"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
)

func (s State) String() string { return string(s) }

func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateCancelled
}

// ParseState is lenient about the spellings the backend has used over time.
// Unknown or empty values are treated as active.
func ParseState(s string) State {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "completed", "complete", "done", "selesai":
		return StateCompleted
	case "cancelled", "canceled", "cancel", "dibatalkan":
		return StateCancelled
	default:
		return StateActive
	}
}

type MeetingType string

const (
	MeetingInternal MeetingType = "internal"
	MeetingExternal MeetingType = "external"
)

func ParseMeetingType(s string) MeetingType {
	if strings.EqualFold(strings.TrimSpace(s), string(MeetingExternal)) {
		return MeetingExternal
	}
	return MeetingInternal
}
