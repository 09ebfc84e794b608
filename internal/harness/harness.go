package harness

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/verance/rtac/internal/batch"
	"github.com/verance/rtac/internal/pointslist"
	"github.com/verance/rtac/internal/rtacxml"
)

// Result holds the pipeline output for one scenario run.
type Result struct {
	Aggregate rtacxml.ParseResult
	ByDevice  pointslist.ByDevice
}

// Run executes a scenario: batch-resolve its fixture files, generate
// the points lists, and evaluate every assertion. baseDir anchors the
// scenario's relative paths (normally the scenario file's directory).
//
// The returned Result is non-nil whenever the pipeline itself ran;
// assertion failures are reported in the error while the Result stays
// available for golden comparison and debugging.
func Run(scenario *Scenario, baseDir string) (*Result, error) {
	files := make([]string, len(scenario.Files))
	for i, f := range scenario.Files {
		files[i] = filepath.Join(baseDir, f)
	}

	profile := pointslist.DefaultProfile()
	if scenario.Profile != "" {
		var err error
		profile, err = pointslist.LoadProfile(filepath.Join(baseDir, scenario.Profile))
		if err != nil {
			return nil, err
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolved, err := batch.ResolveFiles(files, logger)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Aggregate: resolved.Aggregate,
		ByDevice:  pointslist.Generate(&resolved.Aggregate, profile),
	}

	for i, assertion := range scenario.Assertions {
		if err := check(result.ByDevice, assertion); err != nil {
			return result, fmt.Errorf("%s: assertions[%d]: %w", scenario.Name, i, err)
		}
	}
	return result, nil
}
