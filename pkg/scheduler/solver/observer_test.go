package solver

import "testing"

func TestNoopObserverDoesNotPanic(t *testing.T) {
	var o Observer = NoopObserver{}
	o.OnSolution(1, 42.0)
}
