package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hieudt/replyflock/pkg/domain"
)

func TestIsActive(t *testing.T) {
	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

	// 2025-06-16 is a Monday
	monday := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 16, hour, minute, 0, 0, time.UTC)
	}
	saturday := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 21, hour, minute, 0, 0, time.UTC)
	}

	tbl := []struct {
		name     string
		schedule domain.Schedule
		now      time.Time
		active   bool
	}{
		{
			name:     "disabled schedule is always open",
			schedule: domain.Schedule{Enabled: false, Start: "09:00", End: "17:00"},
			now:      saturday(3, 0),
			active:   true,
		},
		{
			name:     "inside window on active day",
			schedule: domain.Schedule{Enabled: true, Start: "09:00", End: "17:00", Days: weekdays},
			now:      monday(12, 30),
			active:   true,
		},
		{
			name:     "before window",
			schedule: domain.Schedule{Enabled: true, Start: "09:00", End: "17:00", Days: weekdays},
			now:      monday(8, 59),
			active:   false,
		},
		{
			name:     "start is inclusive",
			schedule: domain.Schedule{Enabled: true, Start: "09:00", End: "17:00", Days: weekdays},
			now:      monday(9, 0),
			active:   true,
		},
		{
			name:     "end is exclusive",
			schedule: domain.Schedule{Enabled: true, Start: "09:00", End: "17:00", Days: weekdays},
			now:      monday(17, 0),
			active:   false,
		},
		{
			name:     "inactive day",
			schedule: domain.Schedule{Enabled: true, Start: "09:00", End: "17:00", Days: weekdays},
			now:      saturday(12, 0),
			active:   false,
		},
		{
			name:     "midnight wrap, evening side",
			schedule: domain.Schedule{Enabled: true, Start: "22:00", End: "02:00", Days: []time.Weekday{time.Monday}},
			now:      monday(23, 0),
			active:   true,
		},
		{
			name:     "midnight wrap, after-midnight side belongs to the previous day",
			schedule: domain.Schedule{Enabled: true, Start: "22:00", End: "02:00", Days: []time.Weekday{time.Monday}},
			now:      time.Date(2025, 6, 17, 1, 0, 0, 0, time.UTC), // tuesday 01:00
			active:   true,
		},
		{
			name:     "midnight wrap, outside both sides",
			schedule: domain.Schedule{Enabled: true, Start: "22:00", End: "02:00", Days: []time.Weekday{time.Monday}},
			now:      monday(12, 0),
			active:   false,
		},
		{
			name:     "midnight wrap, after-midnight on a day whose previous day is inactive",
			schedule: domain.Schedule{Enabled: true, Start: "22:00", End: "02:00", Days: []time.Weekday{time.Monday}},
			now:      monday(1, 0), // sunday's window, sunday not active
			active:   false,
		},
		{
			name:     "equal start and end means day-only restriction",
			schedule: domain.Schedule{Enabled: true, Start: "09:00", End: "09:00", Days: weekdays},
			now:      monday(3, 0),
			active:   true,
		},
		{
			name:     "invalid clock treated as open",
			schedule: domain.Schedule{Enabled: true, Start: "nine", End: "17:00", Days: weekdays},
			now:      saturday(3, 0),
			active:   true,
		},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.active, IsActive(tt.schedule, tt.now))
		})
	}
}
