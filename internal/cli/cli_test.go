package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tasklog/internal/config"
	"github.com/roach88/tasklog/internal/testutil"
)

// testEnv wires the command tree to a temp config and data directory
// with a fixed clock, so command runs are hermetic and deterministic.
type testEnv struct {
	opts  *RootOptions
	clock *testutil.Clock
}

// baseTime is the clock's starting instant: 09:00 on March 14 in the
// local zone. Local rather than UTC because a reloaded log renders
// instants in local time, and tests must not care about the host zone.
func baseTime() time.Time {
	return time.Date(2025, time.March, 14, 9, 0, 0, 0, time.Local)
}

// newTestEnv pins the clock to baseTime and points TASKLOG_CONFIG at a
// fresh config whose data dir lives under the test's temp dir.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("data_dir: %s\nday_start: \"00:00\"\n", filepath.Join(dir, "data"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	t.Setenv(config.EnvConfig, cfgPath)
	t.Setenv("TASKLOG_DATA_DIR", "")
	t.Setenv("TASKLOG_DAY_START", "")

	clock := testutil.NewClock(baseTime())
	return &testEnv{
		opts:  &RootOptions{Now: clock.Now},
		clock: clock,
	}
}

// run executes one invocation of the command tree. Flag values reset
// between runs because each tree re-registers its flags on the shared
// options.
func (e *testEnv) run(args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand(e.opts)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// mustRun executes an invocation that the test requires to succeed.
func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := e.run(args...)
	require.NoError(t, err, "command %v", args)
	return out
}

// decodeResponse unmarshals a JSON envelope printed by a command.
func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}

// decodeData re-marshals the envelope's data into a typed payload.
func decodeData(t *testing.T, resp CLIResponse, into interface{}) {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, into))
}

// assertSameInstant compares an RFC3339 payload field by the instant it
// denotes, not the zone it happens to be rendered in.
func assertSameInstant(t *testing.T, want time.Time, got string) {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, got)
	require.NoError(t, err, "field %q", got)
	assert.True(t, parsed.Equal(want), "want instant %s, got %s",
		want.Format(time.RFC3339), got)
}
