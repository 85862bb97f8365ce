package precompute

import (
	"time"

	"github.com/shiftplan/scheduler/pkg/model"
)

// WeekendPair is a (Saturday, Sunday) falling inside the horizon.
type WeekendPair struct {
	Saturday time.Time
	Sunday   time.Time
}

// Weekends enumerates every Saturday/Sunday pair within the horizon. A
// Saturday on the last day of the horizon with no following Sunday in range
// is not emitted — both days must fall inside the horizon.
func Weekends(h model.Horizon) []WeekendPair {
	inRange := make(map[string]struct{})
	for _, d := range h.Days() {
		inRange[d.Format("2006-01-02")] = struct{}{}
	}

	var weekends []WeekendPair
	for _, d := range h.Days() {
		if d.Weekday() != time.Saturday {
			continue
		}
		sunday := d.AddDate(0, 0, 1)
		if _, ok := inRange[sunday.Format("2006-01-02")]; ok {
			weekends = append(weekends, WeekendPair{Saturday: d, Sunday: sunday})
		}
	}
	return weekends
}
