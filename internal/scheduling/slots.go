package scheduling

import (
	"time"

	"designdesk/internal/domain"
)

// DefaultHorizonDays bounds the forward slot search. The horizon is the only
// guard against unbounded work; exhausting it is a hard failure
// (domain.ErrNoSlotAvailable), never "any time is fine".
const DefaultHorizonDays = 14

// SuggestNextSlot searches forward from preferred for the earliest interval
// that fits the category's duration entirely inside business hours on a
// non-Sunday day and is free on the staff member's calendar.
//
// The cursor starts at preferred rounded up to the quarter-hour grid and
// advances in 15-minute steps, day by day, up to horizonDays (Sundays consume
// a day without being scanned). The earliest (day, time-of-day) candidate
// wins. A non-positive horizonDays falls back to DefaultHorizonDays.
//
// The scan is deliberately a plain quarter-hour enumeration: one staff
// member's appointments over a two-week horizon is a small working set.
func SuggestNextSlot(preferred time.Time, category domain.Category, staffID string, appointments []*domain.Appointment, hours domain.BusinessHours, horizonDays int) (start, end time.Time, err error) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	cursor := CeilToQuarterHour(preferred)
	for day := 0; day < horizonDays; day++ {
		y, mo, d := cursor.Date()
		if cursor.Weekday() == time.Sunday {
			cursor = time.Date(y, mo, d+1, hours.StartHour, 0, 0, 0, cursor.Location())
			continue
		}
		dayStart := time.Date(y, mo, d, hours.StartHour, 0, 0, 0, cursor.Location())
		dayEnd := time.Date(y, mo, d, hours.EndHour, 0, 0, 0, cursor.Location())
		candidate := cursor
		if candidate.Before(dayStart) {
			candidate = dayStart
		}
		for candidate.Before(dayEnd) {
			candidateEnd := ComputeEnd(candidate, category)
			if candidateEnd.After(dayEnd) {
				// The duration is fixed, so every later start today
				// overruns closing as well.
				break
			}
			if IsAvailable(candidate, candidateEnd, staffID, appointments, "") {
				return candidate, candidateEnd, nil
			}
			candidate = AddMinutes(candidate, GridMinutes)
		}
		cursor = time.Date(y, mo, d+1, hours.StartHour, 0, 0, 0, cursor.Location())
	}
	return time.Time{}, time.Time{}, domain.ErrNoSlotAvailable
}
