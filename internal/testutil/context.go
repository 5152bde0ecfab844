// Package testutil holds helpers shared by encard's package tests.
package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds store and session calls in unit tests.
const DefaultTimeout = 5 * time.Second

// Context derives a deadline-bound context from the test's own context, so it
// is cancelled when the test finishes. Zero or negative timeouts fall back to
// DefaultTimeout, and the deadline never runs past the one given to go test.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(t.Context(), clampTimeout(t, timeout))
	t.Cleanup(cancel)
	return ctx
}

func clampTimeout(t testing.TB, timeout time.Duration) time.Duration {
	timeout = max(timeout, 0)
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	deadline, ok := t.(interface{ Deadline() (time.Time, bool) })
	if !ok {
		return timeout
	}
	end, set := deadline.Deadline()
	if !set {
		return timeout
	}
	return min(timeout, max(time.Until(end)-time.Second, time.Millisecond))
}
