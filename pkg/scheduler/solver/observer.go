package solver

// Observer receives incumbent notifications as the search progresses.
// The reference implementation hooks a CpSolverSolutionCallback that fires
// once per improving solution with a running objective value; the Go
// cpmodel binding in this pack exposes only a single blocking solve call
// with no per-solution callback hook, so Observer is notified exactly once
// here, after the solve returns, rather than incrementally during it. A
// driver built against a richer binding could call OnSolution repeatedly
// without changing this interface.
type Observer interface {
	OnSolution(count int, objectiveValue float64)
}

// NoopObserver discards every notification. It is the default when the
// caller does not need progress output (tests, batch runs).
type NoopObserver struct{}

// OnSolution implements Observer.
func (NoopObserver) OnSolution(int, float64) {}
