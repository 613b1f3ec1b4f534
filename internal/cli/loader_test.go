package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tasklog/internal/config"
	"github.com/roach88/tasklog/internal/task"
)

func TestLoadApp_EmptyFirstRun(t *testing.T) {
	env := newTestEnv(t)

	app, err := loadApp(env.opts)
	require.NoError(t, err)
	assert.Equal(t, 0, app.log.Len())
	assert.Equal(t, time.Duration(0), app.dayStart)
	assert.Equal(t, env.clock.Now(), app.now)
	assert.Equal(t, filepath.Join(app.cfg.DataDir, "tasklog.jsonl"), app.logPath)
}

func TestLoadApp_MissingConfigIsCommandError(t *testing.T) {
	newTestEnv(t)
	t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := loadApp(&RootOptions{})
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestLoadApp_SaveRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	app, err := loadApp(env.opts)
	require.NoError(t, err)
	_, err = app.engine.Start("coding", app.now)
	require.NoError(t, err)
	require.NoError(t, app.save())

	reloaded, err := loadApp(env.opts)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.log.Len())
	current, err := reloaded.engine.Current()
	require.NoError(t, err)
	assert.Equal(t, "coding", current)
}

func TestLoadApp_CorruptLogKeepsKind(t *testing.T) {
	env := newTestEnv(t)

	app, err := loadApp(env.opts)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(app.logPath), 0o755))
	require.NoError(t, os.WriteFile(app.logPath, []byte("{not json\n"), 0o644))

	_, err = loadApp(env.opts)
	require.Error(t, err)
	assert.True(t, task.IsCorruptLog(err))
	assert.Equal(t, ExitCorruptLog, GetExitCode(err))
}

func TestAppEnv_Today(t *testing.T) {
	env := newTestEnv(t)

	app, err := loadApp(env.opts)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", app.today().String())
}

func TestRequireTaskName(t *testing.T) {
	assert.NoError(t, requireTaskName("coding"))

	err := requireTaskName("   ")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
