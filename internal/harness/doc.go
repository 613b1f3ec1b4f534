// Package harness provides scenario-driven conformance testing for the
// session engine.
//
// A scenario scripts a day of session transitions against a fresh
// in-memory log and asserts on the outcome. Steps run through the real
// engine, so a scenario failing means the engine misbehaved, not that
// the script disagreed with itself.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	base: "2025-03-14T09:00:00Z"
//	day_start: "00:00"
//	steps:
//	  - op: start
//	    task: coding
//	    at: 0
//	  - op: stop
//	    at: 45
//	  - op: resume
//	    at: 60
//	    expect:
//	      task: coding
//	  - op: start
//	    task: meeting
//	    at: 70
//	    expect:
//	      error: ALREADY_RUNNING
//	assertions:
//	  - type: current_task
//	    task: coding
//	  - type: task_total
//	    task: coding
//	    day: "2025-03-14"
//	    minutes: 55
//
// Step times are minutes after the base instant and must not move
// backwards. A step without an expect clause must succeed; an expect
// clause pins the error kind, the current task after the step, or
// both.
//
// # Assertion Types
//
// The following assertion types are supported:
//
//   - current_task: Verifies the running task once all steps ran (empty
//     task means nothing may be running)
//   - interval_count: Verifies how many intervals the log holds, for
//     one task or overall
//   - task_order: Verifies task names in order of first appearance
//   - task_total: Verifies a task's total minutes, for one day or
//     across the whole log
//
// # Deterministic Testing
//
// Scenarios carry their own clock: every instant derives from the base
// and a step offset, and open intervals are measured at the last
// step's time. Identical runs produce identical timelines, which
// golden files compare byte for byte.
//
// # Usage
//
// Load and run a scenario:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/basic_day.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
