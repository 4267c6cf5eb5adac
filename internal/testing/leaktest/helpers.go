// Package leaktest checks that background components release their goroutines.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const settleTimeout = time.Second

// GoroutineChecker records the goroutine count before a component starts
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines are still running
// once the count has had settleTimeout to come back down.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(settleTimeout)
	leaked := 0
	for {
		leaked = runtime.NumGoroutine() - g.before
		if leaked <= tolerance || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, leaked=%d (tolerance=%d)", g.before, leaked, tolerance)
	}
}
