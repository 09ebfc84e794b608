package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares the generated
// points-by-device structure against a golden file stored in
// testdata/golden/{scenario.Name}.golden. JSON map keys serialize
// sorted, so the comparison is deterministic.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario, baseDir string) error {
	t.Helper()

	result, err := Run(scenario, baseDir)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(result.ByDevice, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return nil
}
