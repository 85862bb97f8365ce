// Package precompute derives values from the catalog that the model builder
// needs but that are cheaper to compute once up front than to re-derive
// inside the constraint loop: forbidden shift transitions and weekend pairs.
package precompute

import "github.com/shiftplan/scheduler/pkg/model"

// Transition is an ordered pair of shift ids: working Late on day D then
// Early on day D+1 leaves less than the minimum rest interval.
type Transition struct {
	Late  string
	Early string
}

// ForbiddenTransitions enumerates every (late, early) shift pair whose
// back-to-back scheduling across a day boundary violates minRestHours.
// Rest is measured as the time from the end of the late shift to midnight,
// plus the time from midnight to the start of the early shift — this holds
// regardless of whether either shift itself straddles midnight, since
// duration (and therefore overnight-ness) never enters the calculation.
func ForbiddenTransitions(shifts map[string]model.Shift, minRestHours int) map[Transition]struct{} {
	minRestMinutes := minRestHours * 60
	forbidden := make(map[Transition]struct{})

	for _, late := range shifts {
		for _, early := range shifts {
			restUntilMidnight := model.MinutesInDay - late.EndMinutes
			restAfterMidnight := early.StartMinutes
			totalRest := restUntilMidnight + restAfterMidnight

			if totalRest < minRestMinutes {
				forbidden[Transition{Late: late.ID, Early: early.ID}] = struct{}{}
			}
		}
	}

	return forbidden
}

// IsForbidden reports whether scheduling `early` the day after `late` would
// violate minimum rest.
func IsForbidden(forbidden map[Transition]struct{}, late, early string) bool {
	_, ok := forbidden[Transition{Late: late, Early: early}]
	return ok
}
