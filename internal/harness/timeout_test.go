package harness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandContext_UsesConfiguredTimeout(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	settings.CommandTimeout = 2 * time.Second

	h := NewWithSettings(t, settings, "")

	ctx, cancel := h.commandContext()
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
}

func TestClampToTestDeadline(t *testing.T) {
	t.Parallel()

	timeout := 5 * time.Minute

	t.Run("no deadline", func(t *testing.T) {
		t.Parallel()

		_, clamp := clampToTestDeadline(time.Time{}, false, timeout)
		assert.False(t, clamp)
	})

	t.Run("deadline beyond timeout window", func(t *testing.T) {
		t.Parallel()

		_, clamp := clampToTestDeadline(time.Now().Add(time.Hour), true, timeout)
		assert.False(t, clamp)
	})

	t.Run("deadline inside timeout window", func(t *testing.T) {
		t.Parallel()

		deadline := time.Now().Add(time.Minute)
		adjusted, clamp := clampToTestDeadline(deadline, true, timeout)
		require.True(t, clamp)
		assert.Equal(t, deadline.Add(-DefaultTestBuffer), adjusted)
	})

	t.Run("deadline already past still clamps", func(t *testing.T) {
		t.Parallel()

		deadline := time.Now().Add(-time.Minute)
		adjusted, clamp := clampToTestDeadline(deadline, true, timeout)
		require.True(t, clamp)
		assert.True(t, adjusted.Before(time.Now()))
	})
}

func TestCommandContext_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	h := NewWithSettings(t, testSettings(), "")

	ctx, cancel := h.commandContext()
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	// Zero configured timeout falls back to the runner default, possibly
	// tightened to the test deadline.
	assert.True(t, deadline.After(time.Now()))
}
