package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verance/rtac/internal/pointslist"
)

func fixtureByDevice() pointslist.ByDevice {
	return pointslist.ByDevice{
		"SEL_RTAC_1": &pointslist.DeviceRows{
			MapName: "MAP_A",
			Rows: []pointslist.Row{
				{
					Destination: "MAP_A.BKR1",
					Source:      "SEL.BKR1",
					DataType:    "SPS",
					PointType:   "BI",
					Index:       "0",
					Comment:     "Breaker",
					MapName:     "MAP_A",
				},
				{
					Destination: "MAP_A.V1",
					Source:      "SEL.V1",
					DataType:    "MV",
					PointType:   "AI",
					Index:       "3",
					MapName:     "MAP_A",
				},
			},
			Duplicates: 1,
		},
	}
}

func TestCheckDeviceCount(t *testing.T) {
	byDevice := fixtureByDevice()

	require.NoError(t, check(byDevice, Assertion{Type: AssertDeviceCount, Count: 1}))

	err := check(byDevice, Assertion{Type: AssertDeviceCount, Count: 2})
	require.Error(t, err)
	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, AssertDeviceCount, ae.Type)
	assert.Contains(t, ae.Actual, "SEL_RTAC_1")
}

func TestCheckRowCount(t *testing.T) {
	byDevice := fixtureByDevice()

	require.NoError(t, check(byDevice, Assertion{
		Type: AssertRowCount, Device: "SEL_RTAC_1", Count: 2,
	}))
	require.Error(t, check(byDevice, Assertion{
		Type: AssertRowCount, Device: "SEL_RTAC_1", Count: 3,
	}))
}

func TestCheckRowCountUnknownDevice(t *testing.T) {
	err := check(fixtureByDevice(), Assertion{
		Type: AssertRowCount, Device: "NOPE", Count: 2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device NOPE present")
}

func TestCheckDuplicateCount(t *testing.T) {
	byDevice := fixtureByDevice()

	require.NoError(t, check(byDevice, Assertion{
		Type: AssertDuplicateCount, Device: "SEL_RTAC_1", Count: 1,
	}))
	require.Error(t, check(byDevice, Assertion{
		Type: AssertDuplicateCount, Device: "SEL_RTAC_1", Count: 0,
	}))
}

func TestCheckHasRow(t *testing.T) {
	byDevice := fixtureByDevice()

	// Subset match: unlisted fields are ignored.
	require.NoError(t, check(byDevice, Assertion{
		Type:   AssertHasRow,
		Device: "SEL_RTAC_1",
		Row:    map[string]string{"destination": "MAP_A.BKR1", "point_type": "BI"},
	}))

	err := check(byDevice, Assertion{
		Type:   AssertHasRow,
		Device: "SEL_RTAC_1",
		Row:    map[string]string{"destination": "MAP_A.BKR1", "point_type": "AI"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no match among 2 row(s)")
}

func TestCheckNoRow(t *testing.T) {
	byDevice := fixtureByDevice()

	require.NoError(t, check(byDevice, Assertion{
		Type: AssertNoRow, Destination: "LOGIC.X",
	}))

	err := check(byDevice, Assertion{
		Type: AssertNoRow, Destination: "MAP_A.V1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found on device SEL_RTAC_1")
}

func TestRowMatchesEmptyWant(t *testing.T) {
	// An empty field map matches any row; validate() keeps scenarios
	// from declaring one, but check itself stays permissive.
	assert.True(t, rowMatches(pointslist.Row{Destination: "X"}, nil))
}
