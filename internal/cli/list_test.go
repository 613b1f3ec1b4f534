package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand_EmptyDay(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "list")
	assert.Empty(t, out)
}

func TestListCommand_FirstStartOrder(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "start", "coding", "--create")
	env.clock.Advance(30 * time.Minute)
	env.mustRun(t, "switch", "meeting", "--create")
	env.clock.Advance(15 * time.Minute)
	env.mustRun(t, "switch", "coding")
	env.clock.Advance(15 * time.Minute)
	env.mustRun(t, "stop")

	// coding appears once despite two sessions, and before meeting.
	out := env.mustRun(t, "list")
	assert.Equal(t, "coding\nmeeting\n", out)
}

func TestListCommand_DaysAgo(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "start", "coding", "--create")
	env.clock.Advance(time.Hour)
	env.mustRun(t, "stop")
	env.clock.Set(time.Date(2025, time.March, 15, 9, 0, 0, 0, time.Local))

	out := env.mustRun(t, "list")
	assert.Empty(t, out)

	out = env.mustRun(t, "list", "-n", "1")
	assert.Equal(t, "coding\n", out)
}

func TestListCommand_NegativeDaysAgo(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("list", "-n", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestListCommand_JSONOutput(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "start", "coding", "--create")

	out, _, err := env.run("--format", "json", "list")
	require.NoError(t, err)

	var result ListResult
	decodeData(t, decodeResponse(t, out), &result)
	assert.Equal(t, "2025-03-14", result.Day)
	assert.Equal(t, []string{"coding"}, result.Tasks)
}

func TestListCommand_JSONEmptyDayIsEmptyArray(t *testing.T) {
	env := newTestEnv(t)

	out, _, err := env.run("--format", "json", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"tasks":[]`)
}
