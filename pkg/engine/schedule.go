package engine

import (
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/hieudt/replyflock/pkg/domain"
)

// IsActive reports whether the schedule window allows activity at the given
// moment. A disabled schedule is always open. A window whose end precedes its
// start wraps midnight: the tail after midnight belongs to the previous day's
// window, so the weekday check uses the day the window started on.
func IsActive(s domain.Schedule, now time.Time) bool {
	if !s.Enabled {
		return true
	}

	start, ok := parseClock(s.Start)
	if !ok {
		lgr.Printf("[WARN] invalid schedule start %q, window treated as open", s.Start)
		return true
	}
	end, ok := parseClock(s.End)
	if !ok {
		lgr.Printf("[WARN] invalid schedule end %q, window treated as open", s.End)
		return true
	}

	minute := now.Hour()*60 + now.Minute()

	switch {
	case start == end:
		// zero-length window means no time-of-day restriction
		return s.HasDay(now.Weekday())
	case start < end:
		return s.HasDay(now.Weekday()) && minute >= start && minute < end
	default: // wraps midnight
		if minute >= start {
			return s.HasDay(now.Weekday())
		}
		if minute < end {
			yesterday := time.Weekday((int(now.Weekday()) + 6) % 7)
			return s.HasDay(yesterday)
		}
		return false
	}
}

// parseClock converts "HH:MM" to minutes since midnight
func parseClock(clock string) (int, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
