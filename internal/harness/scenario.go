package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a set of RTAC export
// fixtures and assertions over the points lists generated from them.
type Scenario struct {
	// Name uniquely identifies this scenario; it is also the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Files lists RTAC export fixture paths, relative to the scenario
	// file location. Batch order follows list order.
	Files []string `yaml:"files"`

	// Profile is an optional CUE profile path, relative to the
	// scenario file location.
	Profile string `yaml:"profile,omitempty"`

	// Assertions validate the generated output.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates one property of the generated points lists.
type Assertion struct {
	// Type specifies the assertion type:
	//   - "device_count": total number of devices in the output
	//   - "row_count": number of rows for one device
	//   - "duplicate_count": duplicate counter for one device
	//   - "has_row": a device has a row matching the given fields
	//   - "no_row": no device has a row with the given destination
	Type string `yaml:"type"`

	// Device names the device under test (row_count, duplicate_count,
	// has_row).
	Device string `yaml:"device,omitempty"`

	// Count is the expected number (device_count, row_count,
	// duplicate_count).
	Count int `yaml:"count,omitempty"`

	// Row contains expected row field values (has_row). Subset match:
	// only specified fields are validated. Keys: destination, source,
	// data_type, point_type, index, comment, map_name.
	Row map[string]string `yaml:"row,omitempty"`

	// Destination is the destination tag that must be absent (no_row).
	Destination string `yaml:"destination,omitempty"`
}

// Assertion type constants.
const (
	AssertDeviceCount    = "device_count"
	AssertRowCount       = "row_count"
	AssertDuplicateCount = "duplicate_count"
	AssertHasRow         = "has_row"
	AssertNoRow          = "no_row"
)

// LoadScenario reads and parses a scenario YAML file. Unknown fields
// are rejected so typos fail loudly instead of silently passing.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if err := scenario.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Files) == 0 {
		return fmt.Errorf("files is required")
	}
	for i, a := range s.Assertions {
		switch a.Type {
		case AssertDeviceCount:
		case AssertRowCount, AssertDuplicateCount:
			if a.Device == "" {
				return fmt.Errorf("assertions[%d] (%s): device is required", i, a.Type)
			}
		case AssertHasRow:
			if a.Device == "" {
				return fmt.Errorf("assertions[%d] (%s): device is required", i, a.Type)
			}
			if len(a.Row) == 0 {
				return fmt.Errorf("assertions[%d] (%s): row is required", i, a.Type)
			}
		case AssertNoRow:
			if a.Destination == "" {
				return fmt.Errorf("assertions[%d] (%s): destination is required", i, a.Type)
			}
		default:
			return fmt.Errorf("assertions[%d]: unknown type %q", i, a.Type)
		}
	}
	return nil
}
