// Package leaktest has goroutine-count checks for tests that spin up workers
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond
	drainTimeout = time.Second
)

// GoroutineChecker records the goroutine count at creation and later reports
// growth beyond a tolerance
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check polls until the count drops back within tolerance, failing the test
// if it has not done so after drainTimeout
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(drainTimeout)
	for {
		after := runtime.NumGoroutine()
		if after-g.before <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("Potential goroutine leak: before=%d, after=%d, tolerance=%d", g.before, after, tolerance)
			return
		}
		runtime.Gosched()
		time.Sleep(pollInterval)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
