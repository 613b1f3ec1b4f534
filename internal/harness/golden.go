package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TimelineSnapshot captures the complete timeline of a scenario
// execution for deterministic comparison.
type TimelineSnapshot struct {
	ScenarioName string          `json:"scenario_name"`
	Timeline     []TimelineEvent `json:"timeline"`
}

// RunWithGolden executes a scenario and compares its timeline against a
// golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files serve as the source of truth for expected timelines;
// the scenario's own expect clauses and assertions are still evaluated
// and reported through the returned result.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	snapshot := TimelineSnapshot{
		ScenarioName: scenario.Name,
		Timeline:     result.Timeline,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return result, nil
}
