// Package scheduling implements the appointment scheduling core: the
// quarter-hour time grid, availability checking, the forward slot search, and
// role-based calendar filtering. Every function here is a pure function of
// its inputs; each call gets its own snapshot of appointments, so the package
// is safe to use from concurrent requests without locking.
package scheduling

import (
	"time"

	"designdesk/internal/domain"
)

// GridMinutes is the scheduling grid step. All appointment starts land on a
// quarter-hour boundary.
const GridMinutes = 15

// All grid arithmetic operates on decomposed local wall-clock components and
// rebuilds values with time.Date. Adding durations to an absolute instant can
// shift the displayed local time across a DST transition; component
// arithmetic preserves the wall clock the user sees.

// RoundToQuarterHour rounds the minute component to the nearest multiple of
// 15, rolling into the next hour when it rounds to 60. Seconds and below are
// dropped. The function is idempotent.
func RoundToQuarterHour(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi := t.Hour(), t.Minute()
	mi = (mi + GridMinutes/2) / GridMinutes * GridMinutes
	return time.Date(y, mo, d, h, mi, 0, 0, t.Location())
}

// CeilToQuarterHour rounds up to the next quarter-hour boundary. A time
// already on the grid (with zero seconds) is returned unchanged.
func CeilToQuarterHour(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi := t.Hour(), t.Minute()
	if mi%GridMinutes == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return time.Date(y, mo, d, h, mi, 0, 0, t.Location())
	}
	mi += GridMinutes - mi%GridMinutes
	return time.Date(y, mo, d, h, mi, 0, 0, t.Location())
}

// AddMinutes adds minutes using local-component arithmetic.
func AddMinutes(t time.Time, minutes int) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, t.Hour(), t.Minute()+minutes, 0, 0, t.Location())
}

// ComputeEnd returns start plus the category's default duration.
func ComputeEnd(start time.Time, category domain.Category) time.Time {
	return AddMinutes(start, domain.RuleFor(category).DurationMinutes)
}

// FitsBusinessDay reports whether [start, end) lies entirely within the
// business window of a single non-Sunday day. Even a one-minute overrun past
// closing is rejected.
func FitsBusinessDay(start, end time.Time, hours domain.BusinessHours) bool {
	if start.Weekday() == time.Sunday {
		return false
	}
	y, mo, d := start.Date()
	dayStart := time.Date(y, mo, d, hours.StartHour, 0, 0, 0, start.Location())
	dayEnd := time.Date(y, mo, d, hours.EndHour, 0, 0, 0, start.Location())
	return !start.Before(dayStart) && !end.After(dayEnd)
}

// NextBusinessDayStart returns the opening of the first non-Sunday day after
// t's date.
func NextBusinessDayStart(t time.Time, hours domain.BusinessHours) time.Time {
	y, mo, d := t.Date()
	next := time.Date(y, mo, d+1, hours.StartHour, 0, 0, 0, t.Location())
	if next.Weekday() == time.Sunday {
		next = time.Date(y, mo, d+2, hours.StartHour, 0, 0, 0, t.Location())
	}
	return next
}
