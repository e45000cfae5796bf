// Package daterange computes the concrete [start, end] intervals behind the
// records view's date presets and steppers. All functions are pure: they map
// a "now" or pivot date to an inclusive interval plus a human-readable label.
// A nil Start or End means the interval is unbounded on that side.
package daterange

import (
	"fmt"
	"time"
)

// Range is an inclusive date interval with a display label.
type Range struct {
	Start *time.Time
	End   *time.Time
	Label string
}

// Contains reports whether t falls within the range, inclusive on both
// sides. A nil bound imposes no constraint.
func (r Range) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// Preset names accepted by ParsePreset.
const (
	PresetThisWeek  = "this_week"
	PresetThisMonth = "this_month"
	PresetThisYear  = "this_year"
	PresetLast30    = "last_30"
	PresetLast90    = "last_90"
	PresetAllTime   = "all"
)

// ParsePreset resolves a named quick-range preset against now.
func ParsePreset(name string, now time.Time) (Range, error) {
	switch name {
	case PresetThisWeek:
		return ThisWeek(now), nil
	case PresetThisMonth:
		return ThisMonth(now), nil
	case PresetThisYear:
		return ThisYear(now), nil
	case PresetLast30:
		return LastNDays(now, 30), nil
	case PresetLast90:
		return LastNDays(now, 90), nil
	case PresetAllTime:
		return AllTime(), nil
	default:
		return Range{}, fmt.Errorf("unknown date range preset %q", name)
	}
}

// ThisWeek spans Monday 00:00 through Sunday 23:59:59.999 of the week
// containing now.
func ThisWeek(now time.Time) Range {
	start := weekStart(now)
	end := endOfDay(start.AddDate(0, 0, 6))
	return Range{Start: &start, End: &end, Label: "This week"}
}

// ThisMonth spans the first calendar day of now's month at 00:00 through the
// last calendar day at 23:59:59.999.
func ThisMonth(now time.Time) Range {
	r := MonthOf(now, now)
	r.Label = "This month"
	return r
}

// ThisYear spans Jan 1 00:00 through Dec 31 23:59:59.999 of now's year.
func ThisYear(now time.Time) Range {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), time.December, 31, 23, 59, 59, int(999*time.Millisecond), now.Location())
	return Range{Start: &start, End: &end, Label: "This year"}
}

// LastNDays spans the n-day window ending at now, inclusive of today.
func LastNDays(now time.Time, n int) Range {
	start := startOfDay(now.AddDate(0, 0, -(n - 1)))
	end := now
	return Range{Start: &start, End: &end, Label: fmt.Sprintf("Last %d days", n)}
}

// AllTime is unbounded on both sides.
func AllTime() Range {
	return Range{Label: "All time"}
}

// WeekOf spans the Monday-anchored week containing pivot.
func WeekOf(pivot time.Time) Range {
	start := weekStart(pivot)
	end := endOfDay(start.AddDate(0, 0, 6))
	return Range{Start: &start, End: &end, Label: "Week of " + start.Format("Jan 2, 2006")}
}

// MonthOf spans the calendar month containing pivot. The label reads
// "This month" when the pivot's month is now's month, otherwise the
// month-year name.
func MonthOf(pivot, now time.Time) Range {
	start := time.Date(pivot.Year(), pivot.Month(), 1, 0, 0, 0, 0, pivot.Location())
	// Day zero of the next month is the last day of this one.
	end := time.Date(pivot.Year(), pivot.Month()+1, 0, 23, 59, 59, int(999*time.Millisecond), pivot.Location())
	label := start.Format("January 2006")
	if pivot.Year() == now.Year() && pivot.Month() == now.Month() {
		label = "This month"
	}
	return Range{Start: &start, End: &end, Label: label}
}

// YearOf spans the calendar year containing pivot.
func YearOf(pivot time.Time) Range {
	start := time.Date(pivot.Year(), time.January, 1, 0, 0, 0, 0, pivot.Location())
	end := time.Date(pivot.Year(), time.December, 31, 23, 59, 59, int(999*time.Millisecond), pivot.Location())
	return Range{Start: &start, End: &end, Label: start.Format("2006")}
}

// StepMonth shifts a month-shaped range by delta months relative to its
// start (or now, when the range is unbounded) and recomputes the same kind
// of interval.
func StepMonth(r Range, delta int, now time.Time) Range {
	base := now
	if r.Start != nil {
		base = *r.Start
	}
	pivot := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, base.Location()).AddDate(0, delta, 0)
	return MonthOf(pivot, now)
}

// StepWeek shifts a week-shaped range by delta weeks relative to its start
// (or now, when the range is unbounded).
func StepWeek(r Range, delta int, now time.Time) Range {
	base := now
	if r.Start != nil {
		base = *r.Start
	}
	return WeekOf(base.AddDate(0, 0, 7*delta))
}

// StepYear shifts a year-shaped range by delta years relative to its start
// (or now, when the range is unbounded).
func StepYear(r Range, delta int, now time.Time) Range {
	base := now
	if r.Start != nil {
		base = *r.Start
	}
	return YearOf(base.AddDate(delta, 0, 0))
}

// weekStart returns Monday 00:00 of the week containing t (ISO-like,
// Monday-anchored).
func weekStart(t time.Time) time.Time {
	diffToMonday := (int(t.Weekday()) + 6) % 7
	return startOfDay(t.AddDate(0, 0, -diffToMonday))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
