package harness

import (
	"fmt"
	"strings"

	"github.com/verance/rtac/internal/pointslist"
)

// AssertionError reports one failed assertion with enough context to
// debug the fixture set without re-running anything.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s\n  expected: %s\n  actual: %s",
		e.Type, e.Expected, e.Actual)
}

func check(byDevice pointslist.ByDevice, a Assertion) error {
	switch a.Type {
	case AssertDeviceCount:
		return checkDeviceCount(byDevice, a)
	case AssertRowCount:
		return checkRowCount(byDevice, a)
	case AssertDuplicateCount:
		return checkDuplicateCount(byDevice, a)
	case AssertHasRow:
		return checkHasRow(byDevice, a)
	case AssertNoRow:
		return checkNoRow(byDevice, a)
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}

func checkDeviceCount(byDevice pointslist.ByDevice, a Assertion) error {
	if len(byDevice) == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%d device(s)", a.Count),
		Actual:   fmt.Sprintf("%d device(s): %s", len(byDevice), deviceNames(byDevice)),
	}
}

func checkRowCount(byDevice pointslist.ByDevice, a Assertion) error {
	dev, err := deviceFor(byDevice, a)
	if err != nil {
		return err
	}
	if len(dev.Rows) == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%d row(s) for %s", a.Count, a.Device),
		Actual:   fmt.Sprintf("%d row(s)", len(dev.Rows)),
	}
}

func checkDuplicateCount(byDevice pointslist.ByDevice, a Assertion) error {
	dev, err := deviceFor(byDevice, a)
	if err != nil {
		return err
	}
	if dev.Duplicates == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%d duplicate(s) for %s", a.Count, a.Device),
		Actual:   fmt.Sprintf("%d duplicate(s)", dev.Duplicates),
	}
}

func checkHasRow(byDevice pointslist.ByDevice, a Assertion) error {
	dev, err := deviceFor(byDevice, a)
	if err != nil {
		return err
	}
	for _, row := range dev.Rows {
		if rowMatches(row, a.Row) {
			return nil
		}
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("row matching %v on %s", a.Row, a.Device),
		Actual:   fmt.Sprintf("no match among %d row(s)", len(dev.Rows)),
	}
}

func checkNoRow(byDevice pointslist.ByDevice, a Assertion) error {
	for name, dev := range byDevice {
		for _, row := range dev.Rows {
			if row.Destination == a.Destination {
				return &AssertionError{
					Type:     a.Type,
					Expected: fmt.Sprintf("no row with destination %s", a.Destination),
					Actual:   fmt.Sprintf("found on device %s", name),
				}
			}
		}
	}
	return nil
}

func deviceFor(byDevice pointslist.ByDevice, a Assertion) (*pointslist.DeviceRows, error) {
	dev, ok := byDevice[a.Device]
	if !ok {
		return nil, &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("device %s present", a.Device),
			Actual:   fmt.Sprintf("devices: %s", deviceNames(byDevice)),
		}
	}
	return dev, nil
}

// rowMatches uses subset semantics: only the fields named in want are
// compared.
func rowMatches(row pointslist.Row, want map[string]string) bool {
	fields := map[string]string{
		"destination": row.Destination,
		"source":      row.Source,
		"data_type":   row.DataType,
		"point_type":  row.PointType,
		"index":       row.Index,
		"comment":     row.Comment,
		"map_name":    row.MapName,
	}
	for k, v := range want {
		if fields[k] != v {
			return false
		}
	}
	return true
}

func deviceNames(byDevice pointslist.ByDevice) string {
	if len(byDevice) == 0 {
		return "(none)"
	}
	names := make([]string, 0, len(byDevice))
	for name := range byDevice {
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}
