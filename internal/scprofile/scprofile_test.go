package scprofile

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verance/rtac/internal/rtacxml"
)

func profileFixture() *rtacxml.ParseResult {
	return &rtacxml.ParseResult{
		Devices: []rtacxml.ServerDevice{
			{DeviceName: "EMS_A", MapName: "MAP_A", SourceFile: "a.xml"},
		},
		Points: []rtacxml.Point{
			{Name: "DNP.V1", Address: "3", Type: "MV", MapName: "MAP_A", SourceFile: "a.xml"},
			{Name: "DNP.BKR1", Address: "0", Type: "SPS", Description: "Breaker status", MapName: "MAP_A", SourceFile: "a.xml"},
			{Name: "TRIP_CMD", Address: "5", Type: "operSPC", MapName: "MAP_A", SourceFile: "a.xml"},
		},
	}
}

func TestGenerateStats(t *testing.T) {
	cfg := Config{Substation: "maple", RTUName: "RTAC-1"}

	_, stats := Generate(profileFixture(), cfg)

	assert.Equal(t, 2, stats.RemoteUnits)
	assert.Equal(t, 1, stats.AnalogPoints)
	assert.Equal(t, 1, stats.DiscretePoints)
	assert.Equal(t, 0, stats.AccumulatorPoints)
	assert.Equal(t, 1, stats.ControlPoints)
	assert.Equal(t, 3, stats.TotalPoints)
	assert.Equal(t, "maple", stats.Substation)
	assert.Contains(t, stats.ModelURN, "urn:uuid:")
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{
		Substation: "maple",
		Created:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	first, _ := Generate(profileFixture(), cfg)
	second, _ := Generate(profileFixture(), cfg)
	assert.Equal(t, first, second)

	// A different substation reseeds every mRID.
	other, _ := Generate(profileFixture(), Config{Substation: "oak", Created: cfg.Created})
	assert.NotEqual(t, first, other)
}

func TestMakeMRID(t *testing.T) {
	a := makeMRID("pt", "maple", "DNP.V1")
	b := makeMRID("pt", "maple", "DNP.V1")
	c := makeMRID("pt", "oak", "DNP.V1")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, len(a) > len("_pt-"))
	assert.Equal(t, "_pt-", a[:4])
}

func TestControlPointRendersControl(t *testing.T) {
	data, _ := Generate(profileFixture(), Config{Substation: "maple"})

	assert.Contains(t, string(data), "<cim:Control rdf:ID=")
	assert.Contains(t, string(data), "<cim:RemoteControl rdf:ID=")
	// Controls carry no measurementType; only the two monitored points do.
	assert.Equal(t, 2, strings.Count(string(data), "<cim:Measurement.measurementType>"))
}

func TestUnknownDataTypeDefaultsToDiscrete(t *testing.T) {
	res := &rtacxml.ParseResult{
		Points: []rtacxml.Point{{Name: "X", Type: "XYZ"}},
	}

	data, stats := Generate(res, Config{Substation: "maple"})

	assert.Equal(t, 1, stats.DiscretePoints)
	assert.Contains(t, string(data), "<cim:Discrete rdf:ID=")
	assert.Contains(t, string(data), "<cim:Measurement.measurementType>BI</cim:Measurement.measurementType>")
}

func TestSingleUnitAbsorbsUnmatchedPoints(t *testing.T) {
	res := &rtacxml.ParseResult{
		Devices: []rtacxml.ServerDevice{
			{DeviceName: "EMS_A", MapName: "MAP_A", SourceFile: "a.xml"},
		},
		Points: []rtacxml.Point{{Name: "LOGIC.X", Type: "SPS"}},
	}

	data, _ := Generate(res, Config{Substation: "maple"})
	assert.Contains(t, string(data), "<cim:RemoteSource rdf:ID=")
}

func TestAmbiguousUnitDropsLink(t *testing.T) {
	res := &rtacxml.ParseResult{
		Devices: []rtacxml.ServerDevice{
			{DeviceName: "EMS_A", MapName: "MAP_A"},
			{DeviceName: "EMS_B", MapName: "MAP_B"},
		},
		Points: []rtacxml.Point{{Name: "LOGIC.X", Type: "SPS", MapName: "MAP_C"}},
	}

	data, _ := Generate(res, Config{Substation: "maple"})
	assert.NotContains(t, string(data), "<cim:RemoteSource rdf:ID=")
}

func TestFirstDeviceWinsPerMapName(t *testing.T) {
	res := &rtacxml.ParseResult{
		Devices: []rtacxml.ServerDevice{
			{DeviceName: "EMS_A", MapName: "MAP_A", SourceFile: "a.xml"},
			{DeviceName: "EMS_A_COPY", MapName: "MAP_A", SourceFile: "b.xml"},
		},
	}

	data, stats := Generate(res, Config{Substation: "maple"})

	assert.Equal(t, 1, stats.RemoteUnits)
	assert.NotContains(t, string(data), "EMS_A_COPY")
}

func TestEquipmentMapping(t *testing.T) {
	cfg := Config{
		Substation: "maple",
		EquipmentMapping: map[string]string{
			"DNP.BKR1": "_eq-breaker-1",
			"MAP_A":    "_eq-substation-bus",
		},
	}

	data, _ := Generate(profileFixture(), cfg)

	// Exact tag match takes priority over the map-name fallback.
	assert.Contains(t, string(data), `<cim:Measurement.PowerSystemResource rdf:resource="#_eq-breaker-1"/>`)
	// Points without a tag entry fall back to the map name.
	assert.Contains(t, string(data), `<cim:Measurement.PowerSystemResource rdf:resource="#_eq-substation-bus"/>`)
}

func TestSerializeEscapesText(t *testing.T) {
	res := &rtacxml.ParseResult{
		Points: []rtacxml.Point{
			{Name: "X", Type: "SPS", Description: `V < 10 & "low"`},
		},
	}

	data, _ := Generate(res, Config{Substation: "maple"})
	assert.Contains(t, string(data), "V &lt; 10 &amp; &#34;low&#34;")
}

func TestSerializeHeader(t *testing.T) {
	cfg := Config{
		Substation: "maple",
		EQModelURN: "urn:uuid:eq-model-001",
		PEModelURN: "urn:uuid:pe-model-001",
		Created:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, _ := Generate(&rtacxml.ParseResult{}, cfg)
	s := string(data)

	require.True(t, bytes.HasPrefix(data, []byte(`<?xml version="1.0" encoding="UTF-8"?>`)))
	assert.Contains(t, s, "<md:Model.scenarioTime>2026-01-02T03:04:05Z</md:Model.scenarioTime>")
	assert.Contains(t, s, "<md:Model.created>2026-01-02T03:04:05Z</md:Model.created>")
	assert.Contains(t, s, "<md:Model.description>SCADA Configuration profile for maple</md:Model.description>")
	assert.Contains(t, s, `<md:Model.DependentOn rdf:resource="urn:uuid:eq-model-001"/>`)
	assert.Contains(t, s, `<md:Model.DependentOn rdf:resource="urn:uuid:pe-model-001"/>`)
}
