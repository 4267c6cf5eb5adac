package leaktest

import (
	"testing"
)

type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper()                           {}
func (r *recordingTB) Errorf(format string, args ...any) { r.failed = true }

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() { close(done) }()
	<-done

	checker.Check(0)
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	tb := &recordingTB{TB: t}
	checker := NewGoroutineChecker(tb)

	stop := make(chan struct{})
	defer close(stop)
	go func() { <-stop }()

	checker.Check(0)

	if !tb.failed {
		t.Error("expected a leak to be reported")
	}
}
