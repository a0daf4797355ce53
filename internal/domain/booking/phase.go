package booking

import (
	"strconv"
	"strings"
	"time"
)

type Phase string

const (
	PhaseUpcoming Phase = "upcoming"
	PhaseOngoing  Phase = "ongoing"
	PhaseExpired  Phase = "expired"
)

func (p Phase) String() string { return string(p) }

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// WallClock is the reference "now" every classification is made against:
// a calendar date and a time of day in the booking backend's zone.
type WallClock struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func WallClockAt(t time.Time) WallClock {
	return WallClock{Date: t.Format(DateLayout), Time: t.Format(ClockLayout)}
}

// Classify derives the lifecycle phase of a booking held on date between
// start and end (end may be empty) as seen at ref.
//
// Dates are compared as YYYY-MM-DD strings. Same-day bookings compare minutes
// since midnight. Without an end time a booking only expires once now is past
// its start, so "exactly at start" still counts as upcoming. With an end time
// the ongoing window is inclusive at both ends.
func Classify(date, start, end string, ref WallClock) Phase {
	date = strings.TrimSpace(date)
	today := strings.TrimSpace(ref.Date)
	switch {
	case date < today:
		return PhaseExpired
	case date > today:
		return PhaseUpcoming
	}

	now := ClockMinutes(ref.Time)
	startMin := ClockMinutes(start)

	if strings.TrimSpace(end) == "" {
		if now > startMin {
			return PhaseExpired
		}
		return PhaseUpcoming
	}

	endMin := ClockMinutes(end)
	switch {
	case now < startMin:
		return PhaseUpcoming
	case now <= endMin:
		return PhaseOngoing
	default:
		return PhaseExpired
	}
}

// NormalizeClock truncates "HH:MM:SS" to "HH:MM". Anything else is returned
// trimmed and otherwise untouched.
func NormalizeClock(s string) string {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) > 2 {
		return parts[0] + ":" + parts[1]
	}
	return s
}

// ClockMinutes converts a time of day to minutes since midnight. It never
// fails: hours and minutes that do not parse count as zero, so "9" is 09:00
// and "abc" is midnight.
func ClockMinutes(s string) int {
	parts := strings.SplitN(NormalizeClock(s), ":", 2)
	hours := leadingInt(parts[0])
	minutes := 0
	if len(parts) == 2 {
		minutes = leadingInt(parts[1])
	}
	return hours*60 + minutes
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
