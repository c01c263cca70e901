package harness

import (
	"context"
	"time"

	"github.com/dotnet/core-sdk/internal/runner"
)

// defaultCommandTimeout applies when settings carry no explicit timeout.
const defaultCommandTimeout = runner.DefaultTimeout

// DefaultTestBuffer is the time reserved before the test deadline so
// teardown can still run after a command is killed.
const DefaultTestBuffer = 10 * time.Second

// commandContext bounds one external command. The configured timeout
// applies, tightened to the enclosing test's deadline (minus the teardown
// buffer) when that comes first. An already-expired test deadline still
// wins, so a command never outlives the test it runs under.
func (h *Harness) commandContext() (context.Context, context.CancelFunc) {
	timeout := h.settings.CommandTimeout
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}

	deadline, ok := h.t.Deadline()
	if adjusted, clamp := clampToTestDeadline(deadline, ok, timeout); clamp {
		return context.WithDeadline(context.Background(), adjusted)
	}
	return context.WithTimeout(context.Background(), timeout)
}

// clampToTestDeadline reports whether the test deadline minus the teardown
// buffer precedes the timeout window, returning the clamped deadline when
// it does. A deadline already in the past clamps as well.
func clampToTestDeadline(deadline time.Time, ok bool, timeout time.Duration) (time.Time, bool) {
	if !ok {
		return time.Time{}, false
	}
	adjusted := deadline.Add(-DefaultTestBuffer)
	if time.Until(adjusted) < timeout {
		return adjusted, true
	}
	return time.Time{}, false
}
