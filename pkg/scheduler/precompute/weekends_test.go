package precompute

import (
	"testing"
	"time"

	"github.com/shiftplan/scheduler/pkg/model"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestWeekends(t *testing.T) {
	// July 2026: Sat 4th/Sun 5th, Sat 11th/Sun 12th.
	h := model.Horizon{Start: date(t, "2026-07-01"), End: date(t, "2026-07-15")}
	got := Weekends(h)
	if len(got) != 2 {
		t.Fatalf("got %d weekend pairs, want 2: %+v", len(got), got)
	}
	if got[0].Saturday.Format("2006-01-02") != "2026-07-04" || got[0].Sunday.Format("2006-01-02") != "2026-07-05" {
		t.Errorf("first weekend = %+v, want 2026-07-04/05", got[0])
	}
}

func TestWeekendsDanglingSaturdayExcluded(t *testing.T) {
	// Horizon ends on a Saturday with no following Sunday in range.
	h := model.Horizon{Start: date(t, "2026-07-01"), End: date(t, "2026-07-04")}
	got := Weekends(h)
	if len(got) != 0 {
		t.Errorf("got %d weekend pairs, want 0 (dangling Saturday): %+v", len(got), got)
	}
}
