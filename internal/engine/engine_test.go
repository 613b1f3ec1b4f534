package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tasklog/internal/task"
)

// at builds an instant on a fixed test day.
func at(hour, min int) time.Time {
	return time.Date(2025, time.March, 14, hour, min, 0, 0, time.UTC)
}

func closedLog(t *testing.T, entries ...[2]string) *task.Log {
	t.Helper()
	l := task.NewLog()
	for i, e := range entries {
		start := at(9, 0).Add(time.Duration(i) * time.Hour)
		end := start.Add(30 * time.Minute)
		iv, err := task.NewClosedInterval(e[0], start, end)
		require.NoError(t, err)
		l.Append(iv)
		_ = e[1]
	}
	return l
}

func TestEngine_StartFromIdle(t *testing.T) {
	l := task.NewLog()
	e := New(l)

	iv, err := e.Start("coding", at(9, 0))
	require.NoError(t, err)
	assert.True(t, iv.Open())
	assert.Equal(t, "coding", iv.Task)

	state, err := e.State()
	require.NoError(t, err)
	assert.Equal(t, Running, state)

	cur, err := e.Current()
	require.NoError(t, err)
	assert.Equal(t, "coding", cur)
}

func TestEngine_StartWhileRunning(t *testing.T) {
	l := task.NewLog()
	e := New(l)

	_, err := e.Start("coding", at(9, 0))
	require.NoError(t, err)

	_, err = e.Start("meeting", at(9, 30))
	require.Error(t, err)
	assert.True(t, task.IsAlreadyRunning(err))

	var te *task.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "coding", te.Task, "error should name the running task")

	// The failed start appended nothing.
	assert.Equal(t, 1, l.Len())
}

func TestEngine_StopClosesSession(t *testing.T) {
	l := task.NewLog()
	e := New(l)

	_, err := e.Start("coding", at(9, 0))
	require.NoError(t, err)

	iv, err := e.Stop(at(9, 45))
	require.NoError(t, err)
	assert.Equal(t, "coding", iv.Task)
	assert.Equal(t, 45*time.Minute, iv.Duration(at(23, 0)))

	state, err := e.State()
	require.NoError(t, err)
	assert.Equal(t, Idle, state)
}

func TestEngine_StopTwiceFails(t *testing.T) {
	l := task.NewLog()
	e := New(l)

	_, err := e.Start("coding", at(9, 0))
	require.NoError(t, err)
	_, err = e.Stop(at(9, 30))
	require.NoError(t, err)

	before := l.Intervals()
	_, err = e.Stop(at(10, 0))
	assert.True(t, task.IsNoActiveTask(err))

	// The failed stop left the log byte-for-byte identical.
	after := l.Intervals()
	require.Len(t, after, len(before))
	for i := range before {
		assert.True(t, before[i].Equal(after[i]))
	}
}

func TestEngine_StopBeforeStart(t *testing.T) {
	l := task.NewLog()
	e := New(l)

	_, err := e.Start("coding", at(9, 0))
	require.NoError(t, err)

	_, err = e.Stop(at(8, 0))
	assert.True(t, task.IsInvalidDuration(err))

	cur, cerr := e.Current()
	require.NoError(t, cerr)
	assert.Equal(t, "coding", cur, "failed stop must leave the session open")
}

func TestEngine_StopAfter(t *testing.T) {
	start := at(9, 0)

	t.Run("backdates from session start", func(t *testing.T) {
		e := New(task.NewLog())
		_, err := e.Start("coding", start)
		require.NoError(t, err)

		// Stop issued two hours in, crediting only the first 30 minutes.
		iv, err := e.StopAfter(30, start.Add(2*time.Hour))
		require.NoError(t, err)
		assert.True(t, iv.End.Equal(start.Add(30*time.Minute)))
	})

	t.Run("zero minutes closes a zero length session", func(t *testing.T) {
		e := New(task.NewLog())
		_, err := e.Start("coding", start)
		require.NoError(t, err)

		iv, err := e.StopAfter(0, start.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, iv.End.Equal(start))
	})

	t.Run("cannot credit time that has not elapsed", func(t *testing.T) {
		e := New(task.NewLog())
		_, err := e.Start("coding", start)
		require.NoError(t, err)

		_, err = e.StopAfter(90, start.Add(time.Hour))
		assert.True(t, task.IsInvalidDuration(err))

		cur, cerr := e.Current()
		require.NoError(t, cerr)
		assert.Equal(t, "coding", cur)
	})

	t.Run("negative minutes", func(t *testing.T) {
		e := New(task.NewLog())
		_, err := e.Start("coding", start)
		require.NoError(t, err)

		_, err = e.StopAfter(-5, start.Add(time.Hour))
		assert.True(t, task.IsInvalidDuration(err))
	})

	t.Run("idle", func(t *testing.T) {
		e := New(task.NewLog())
		_, err := e.StopAfter(30, start)
		assert.True(t, task.IsNoActiveTask(err))
	})
}

func TestEngine_ResumeNamed(t *testing.T) {
	l := closedLog(t, [2]string{"coding", ""})
	e := New(l)

	iv, err := e.Resume("coding", at(11, 0))
	require.NoError(t, err)
	assert.True(t, iv.Open())
	assert.Equal(t, "coding", iv.Task)

	// History stays immutable: the log grew instead of reopening.
	assert.Equal(t, 2, l.Len())
}

func TestEngine_ResumeLast(t *testing.T) {
	t.Run("picks the most recently closed task", func(t *testing.T) {
		e := New(task.NewLog())
		_, err := e.Start("coding", at(9, 0))
		require.NoError(t, err)
		_, err = e.Stop(at(9, 30))
		require.NoError(t, err)
		_, err = e.Start("meeting", at(9, 30))
		require.NoError(t, err)
		_, err = e.Stop(at(10, 0))
		require.NoError(t, err)

		iv, err := e.Resume("", at(11, 0))
		require.NoError(t, err)
		assert.Equal(t, "meeting", iv.Task)
	})

	t.Run("latest end wins over log position", func(t *testing.T) {
		e := New(task.NewLog())
		_, err := e.Start("meeting", at(9, 0))
		require.NoError(t, err)
		_, err = e.Stop(at(11, 0))
		require.NoError(t, err)

		// Backdated stop leaves coding's end before meeting's.
		_, err = e.Start("coding", at(11, 30))
		require.NoError(t, err)
		_, err = e.Stop(at(11, 45))
		require.NoError(t, err)

		iv, err := e.Resume("", at(12, 0))
		require.NoError(t, err)
		assert.Equal(t, "coding", iv.Task)
	})

	t.Run("empty history", func(t *testing.T) {
		e := New(task.NewLog())
		_, err := e.Resume("", at(9, 0))
		assert.True(t, task.IsNoPreviousTask(err))
	})

	t.Run("while running", func(t *testing.T) {
		e := New(task.NewLog())
		_, err := e.Start("coding", at(9, 0))
		require.NoError(t, err)

		_, err = e.Resume("", at(9, 30))
		assert.True(t, task.IsAlreadyRunning(err))
	})
}

func TestEngine_SwitchWhileRunning(t *testing.T) {
	l := task.NewLog()
	e := New(l)

	_, err := e.Start("coding", at(9, 0))
	require.NoError(t, err)

	iv, err := e.Switch("meeting", at(9, 30))
	require.NoError(t, err)
	assert.Equal(t, "meeting", iv.Task)

	// Equivalent to stop(at) then start(name, at): two intervals that
	// touch at the switch instant.
	ivs := l.Intervals()
	require.Len(t, ivs, 2)
	assert.Equal(t, "coding", ivs[0].Task)
	assert.True(t, ivs[0].End.Equal(at(9, 30)))
	assert.Equal(t, "meeting", ivs[1].Task)
	assert.True(t, ivs[1].Start.Equal(at(9, 30)))
	assert.True(t, ivs[1].Open())
}

func TestEngine_SwitchWhileIdle(t *testing.T) {
	// With nothing running, switch is a plain start.
	l := task.NewLog()
	e := New(l)

	iv, err := e.Switch("meeting", at(9, 0))
	require.NoError(t, err)
	assert.Equal(t, "meeting", iv.Task)
	assert.Equal(t, 1, l.Len())
}

func TestEngine_SwitchToPrevious(t *testing.T) {
	e := New(task.NewLog())
	_, err := e.Start("coding", at(9, 0))
	require.NoError(t, err)
	_, err = e.Stop(at(9, 30))
	require.NoError(t, err)
	_, err = e.Start("meeting", at(9, 30))
	require.NoError(t, err)

	// Bare switch targets the task that ran before the current one,
	// not the session being closed right now.
	iv, err := e.Switch("", at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, "coding", iv.Task)

	t.Run("no history", func(t *testing.T) {
		e := New(task.NewLog())
		_, err := e.Switch("", at(9, 0))
		assert.True(t, task.IsNoPreviousTask(err))
	})
}

func TestEngine_RenameRunningTask(t *testing.T) {
	e := New(task.NewLog())
	_, err := e.Start("coding", at(9, 0))
	require.NoError(t, err)

	count := e.Rename("coding", "deep work")
	assert.Equal(t, 1, count)

	// The session survived the rename under its new name.
	cur, err := e.Current()
	require.NoError(t, err)
	assert.Equal(t, "deep work", cur)

	state, err := e.State()
	require.NoError(t, err)
	assert.Equal(t, Running, state)
}

func TestEngine_DeleteRunningTask(t *testing.T) {
	e := New(task.NewLog())
	_, err := e.Start("coding", at(9, 0))
	require.NoError(t, err)

	count := e.Delete("coding")
	assert.Equal(t, 1, count)

	cur, err := e.Current()
	require.NoError(t, err)
	assert.Equal(t, "", cur)

	state, err := e.State()
	require.NoError(t, err)
	assert.Equal(t, Idle, state)
}

func TestEngine_SingleOpenInvariant(t *testing.T) {
	// Drive a long mixed sequence and verify the invariant after every
	// operation, counting errors as acceptable outcomes.
	e := New(task.NewLog())
	l := e.log

	ops := []func() error{
		func() error { _, err := e.Start("a", at(9, 0)); return err },
		func() error { _, err := e.Start("b", at(9, 5)); return err },
		func() error { _, err := e.Switch("b", at(9, 10)); return err },
		func() error { _, err := e.Stop(at(9, 20)); return err },
		func() error { _, err := e.Stop(at(9, 25)); return err },
		func() error { _, err := e.Resume("", at(9, 30)); return err },
		func() error { _, err := e.Switch("c", at(9, 40)); return err },
		func() error { e.Rename("b", "a"); return nil },
		func() error { e.Delete("a"); return nil },
		func() error { _, err := e.StopAfter(5, at(10, 0)); return err },
		func() error { _, err := e.Resume("c", at(10, 30)); return err },
	}

	for i, op := range ops {
		_ = op()
		open, err := l.FindOpen()
		require.NoError(t, err, "op %d broke the single-open invariant", i)
		_ = open
	}
}
