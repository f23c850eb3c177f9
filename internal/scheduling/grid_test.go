package scheduling

import (
	"math/rand"
	"testing"
	"time"

	"designdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-01 is a Sunday, so 2025-06-02 is a Monday.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func TestRoundToQuarterHour(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"exact boundary unchanged", at(monday, 10, 0), at(monday, 10, 0)},
		{"rounds down below midpoint", at(monday, 10, 7), at(monday, 10, 0)},
		{"rounds up at midpoint", at(monday, 10, 8), at(monday, 10, 15)},
		{"rounds up to next hour", at(monday, 10, 53), at(monday, 11, 0)},
		{"rolls over midnight", at(monday, 23, 55), at(monday.AddDate(0, 0, 1), 0, 0)},
		{"drops seconds", time.Date(2025, 6, 2, 10, 15, 42, 0, time.Local), at(monday, 10, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundToQuarterHour(tt.in)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestRoundToQuarterHour_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		in := time.Date(2025, time.Month(1+rng.Intn(12)), 1+rng.Intn(28),
			rng.Intn(24), rng.Intn(60), rng.Intn(60), 0, time.Local)
		once := RoundToQuarterHour(in)
		twice := RoundToQuarterHour(once)
		require.True(t, twice.Equal(once), "not idempotent for %v: %v != %v", in, once, twice)
		require.Zero(t, once.Minute()%GridMinutes)
		require.Zero(t, once.Second())
	}
}

func TestCeilToQuarterHour(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"on grid unchanged", at(monday, 9, 30), at(monday, 9, 30)},
		{"one minute past", at(monday, 9, 31), at(monday, 9, 45)},
		{"just below boundary", at(monday, 9, 44), at(monday, 9, 45)},
		{"seconds push past grid", time.Date(2025, 6, 2, 9, 30, 1, 0, time.Local), at(monday, 9, 45)},
		{"rolls into next hour", at(monday, 9, 46), at(monday, 10, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CeilToQuarterHour(tt.in)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestComputeEnd_DurationExact(t *testing.T) {
	tests := []struct {
		name     string
		category domain.Category
		start    time.Time
		wantMins int
	}{
		{"consultation", domain.CategoryConsultation, at(monday, 10, 0), 60},
		{"survey", domain.CategorySurvey, at(monday, 11, 0), 60},
		{"design meeting crosses hour", domain.CategoryDesignMeeting, at(monday, 10, 45), 90},
		{"presentation crosses hours", domain.CategoryDesignPresentation, at(monday, 16, 45), 120},
		{"follow up", domain.CategoryFollowUp, at(monday, 9, 0), 5},
		{"crosses midnight", domain.CategoryInternalMeeting, at(monday, 23, 30), 60},
		{"other", domain.CategoryOther, at(monday, 12, 15), 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := ComputeEnd(tt.start, tt.category)
			assert.Equal(t, time.Duration(tt.wantMins)*time.Minute, end.Sub(tt.start))
			assert.Equal(t, tt.wantMins, domain.RuleFor(tt.category).DurationMinutes)
		})
	}
}

func TestFitsBusinessDay(t *testing.T) {
	hours := domain.DefaultBusinessHours
	sunday := monday.AddDate(0, 0, -1)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside hours", at(monday, 9, 0), at(monday, 10, 0), true},
		{"ends exactly at close", at(monday, 16, 0), at(monday, 17, 0), true},
		{"starts before open", at(monday, 8, 45), at(monday, 9, 45), false},
		{"overruns close by a minute", at(monday, 16, 15), at(monday, 17, 1), false},
		{"presentation at 16:45 overruns", at(monday, 16, 45), at(monday, 18, 45), false},
		{"sunday always rejected", at(sunday, 10, 0), at(sunday, 11, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitsBusinessDay(tt.start, tt.end, hours))
		})
	}
}

func TestNextBusinessDayStart(t *testing.T) {
	hours := domain.DefaultBusinessHours
	saturday := monday.AddDate(0, 0, 5)

	got := NextBusinessDayStart(at(monday, 15, 30), hours)
	assert.True(t, got.Equal(at(monday.AddDate(0, 0, 1), 9, 0)))

	// Saturday's next business day skips Sunday.
	got = NextBusinessDayStart(at(saturday, 10, 0), hours)
	assert.True(t, got.Equal(at(monday.AddDate(0, 0, 7), 9, 0)))
}
