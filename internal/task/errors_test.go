package task

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			"already running carries task",
			NewAlreadyRunning("deep work"),
			"ALREADY_RUNNING: a task is already running (task=deep work)",
		},
		{
			"no active task",
			NewNoActiveTask(),
			"NO_ACTIVE_TASK: no task is currently running",
		},
		{
			"corrupt log carries line",
			NewCorruptLog(7, "invalid JSON"),
			"CORRUPT_LOG: invalid JSON (line=7)",
		},
		{
			"io failure carries cause",
			NewIOFailure("open log", fs.ErrPermission),
			"IO_FAILURE: open log: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestKindOf_WrappedError(t *testing.T) {
	err := fmt.Errorf("stop: %w", NewNoActiveTask())
	assert.Equal(t, KindNoActiveTask, KindOf(err))
	assert.True(t, IsNoActiveTask(err))
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestError_UnwrapReachesCause(t *testing.T) {
	cause := fs.ErrNotExist
	err := NewIOFailure("read log", cause)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestIsHelpers_MatchOnlyTheirKind(t *testing.T) {
	err := NewInvalidDuration("negative minutes")
	assert.True(t, IsInvalidDuration(err))
	assert.False(t, IsAlreadyRunning(err))
	assert.False(t, IsNoPreviousTask(err))
	assert.False(t, IsCorruptLog(err))
}
