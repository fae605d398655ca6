package store

import "time"

// TimeOfDay is minutes since local midnight. Schedule windows are closed
// intervals on both ends.
type TimeOfDay int

// MinuteOf returns the TimeOfDay for t in t's location.
func MinuteOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// RecurringWindow is a weekly guest access window: the same weekday and
// time range every week.
type RecurringWindow struct {
	Weekday time.Weekday
	Start   TimeOfDay
	End     TimeOfDay
}

// Covers reports whether the window includes the instant at.
func (w RecurringWindow) Covers(at time.Time) bool {
	if at.Weekday() != w.Weekday {
		return false
	}
	m := MinuteOf(at)
	return m >= w.Start && m <= w.End
}

// OneTimeWindow is a date-bounded guest access window: each day in
// [StartDate, EndDate] grants access during [Start, End].
type OneTimeWindow struct {
	StartDate time.Time // midnight, local
	EndDate   time.Time // midnight, local
	Start     TimeOfDay
	End       TimeOfDay
}

// Covers reports whether the window includes the instant at.
func (w OneTimeWindow) Covers(at time.Time) bool {
	day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	if day.Before(w.StartDate) || day.After(w.EndDate) {
		return false
	}
	m := MinuteOf(at)
	return m >= w.Start && m <= w.End
}
