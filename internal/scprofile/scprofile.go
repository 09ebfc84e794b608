package scprofile

import (
	"bytes"
	"encoding/xml"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verance/rtac/internal/rtacxml"
)

// Namespace URIs of the profile document.
const (
	cimNS      = "http://iec.ch/TC57/CIM100#"
	rdfNS      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	mdNS       = "http://iec.ch/TC57/61970-552/ModelDescription/1#"
	verNS      = "http://verance.ai/CIM/SecondarySystem/1#"
	profileURI = "http://verance.ai/CIM/SCADAConfiguration/1"
)

// cimClasses maps RTAC data types onto CIM measurement classes.
// Control-class entries are informational only; controls always render
// as cim:Control. Unknown types default to Discrete.
var cimClasses = map[string]string{
	"MV":      "Analog",
	"CMV":     "Analog",
	"INT":     "Analog",
	"INS":     "Analog",
	"SPS":     "Discrete",
	"BOOL":    "Discrete",
	"DPS":     "Discrete",
	"BCR":     "Accumulator",
	"APC":     "AnalogControl",
	"INC":     "AnalogControl",
	"operAPC": "AnalogControl",
	"SPC":     "Command",
	"DPC":     "Command",
	"operSPC": "Command",
}

// measurementTypes is the RTAC data type to measurement type table for
// the cim:Measurement.measurementType element. Unknown types default
// to BI.
var measurementTypes = map[string]string{
	"MV": "AI", "CMV": "AI", "INT": "AI", "INS": "AI",
	"SPS": "BI", "BOOL": "BI", "DPS": "BI",
	"BCR": "CT",
	"APC": "AO", "INC": "AO", "operAPC": "AO",
	"SPC": "BO", "DPC": "BO", "operSPC": "BO",
}

// controlDataTypes marks the writable/operate-class data types; these
// render as cim:Control with a cim:RemoteControl link.
var controlDataTypes = map[string]bool{
	"operAPC": true,
	"operSPC": true,
	"APC":     true,
	"INC":     true,
	"SPC":     true,
	"DPC":     true,
}

// Config drives one profile generation.
type Config struct {
	// Substation names the substation the profile describes. It seeds
	// every mRID in the document.
	Substation string

	// RTUName optionally adds the exporting RTAC itself as the central
	// RemoteUnit. The RTAC never appears as a device inside its own
	// export, it IS the export source.
	RTUName string

	// EQModelURN and PEModelURN declare model dependencies in the
	// FullModel header.
	EQModelURN string
	PEModelURN string

	// Description overrides the default model description.
	Description string

	// EquipmentMapping maps tag names (or map names) onto equipment
	// mRIDs of the EQ profile; matched points link to their
	// PowerSystemResource.
	EquipmentMapping map[string]string

	// Created stamps the model header. Zero means current UTC time.
	Created time.Time
}

// Stats summarizes one generated profile.
type Stats struct {
	RemoteUnits       int    `json:"remote_units"`
	AnalogPoints      int    `json:"analog_points"`
	DiscretePoints    int    `json:"discrete_points"`
	AccumulatorPoints int    `json:"accumulator_points"`
	ControlPoints     int    `json:"control_points"`
	TotalPoints       int    `json:"total_points"`
	Substation        string `json:"substation"`
	ModelURN          string `json:"model_urn"`
}

// Builder accumulates profile elements. Add devices before points so
// RemoteSource/RemoteControl links can resolve their RemoteUnit.
type Builder struct {
	cfg      Config
	modelURN string

	unitOrder []string
	unitMRIDs map[string]string
	unitElems []*rdfElement

	measurements   []*rdfElement
	remoteSources  []*rdfElement
	remoteControls []*rdfElement

	stats Stats
}

// NewBuilder prepares a builder for one substation. When cfg.RTUName
// is set the RTAC central node is registered before any devices.
func NewBuilder(cfg Config) *Builder {
	b := &Builder{
		cfg:       cfg,
		modelURN:  "urn:uuid:" + deterministicUUID("sc-model", cfg.Substation),
		unitMRIDs: make(map[string]string),
	}
	if cfg.RTUName != "" {
		b.addRTUIdentity(cfg.RTUName)
	}
	return b
}

// AddDevices registers DNP server devices as cim:RemoteUnit instances.
// One RemoteUnit per map name; the first device wins on a repeat.
func (b *Builder) AddDevices(devices []rtacxml.ServerDevice) {
	for _, dev := range devices {
		if _, seen := b.unitMRIDs[dev.MapName]; seen {
			continue
		}
		id := makeMRID("rtu", b.cfg.Substation, dev.MapName)

		rtu := newElement("cim:RemoteUnit").attr("rdf:ID", id)
		rtu.child("cim:IdentifiedObject.name", dev.DeviceName)
		rtu.child("cim:IdentifiedObject.mRID", id)
		rtu.resource("cim:RemoteUnit.remoteUnitType", cimNS+"RemoteUnitType.ControlCenter")
		if dev.SourceFile != "" {
			rtu.child("ver:RemoteUnit.sourceFile", dev.SourceFile)
		}
		rtu.child("ver:RemoteUnit.mapName", dev.MapName)
		rtu.child("ver:RemoteUnit.protocol", "DNPServer")
		rtu.child("ver:RemoteUnit.role", "server")

		b.addUnit(dev.MapName, id, rtu)
	}
}

// addRTUIdentity adds the exporting RTAC as the central RemoteUnit.
func (b *Builder) addRTUIdentity(name string) {
	id := makeMRID("rtac", b.cfg.Substation, name)

	rtu := newElement("cim:RemoteUnit").attr("rdf:ID", id)
	rtu.child("cim:IdentifiedObject.name", name)
	rtu.child("cim:IdentifiedObject.mRID", id)
	rtu.resource("cim:RemoteUnit.remoteUnitType", cimNS+"RemoteUnitType.SubstationControlSystem")
	rtu.child("ver:RemoteUnit.role", "rtu")

	b.addUnit("__rtac__"+name, id, rtu)
}

func (b *Builder) addUnit(key, id string, unit *rdfElement) {
	b.unitOrder = append(b.unitOrder, key)
	b.unitMRIDs[key] = id
	b.unitElems = append(b.unitElems, unit)
}

// AddPoints registers points as CIM measurement or control instances,
// each with its RemoteSource/RemoteControl link where a RemoteUnit can
// be resolved.
func (b *Builder) AddPoints(points []rtacxml.Point) {
	for _, pt := range points {
		if pt.Name == "" {
			continue
		}

		control := controlDataTypes[pt.Type]
		class := cimClasses[pt.Type]
		id := makeMRID("pt", b.cfg.Substation, pt.Name)

		var elem *rdfElement
		switch {
		case control:
			elem = newElement("cim:Control")
			b.stats.ControlPoints++
		case class == "Analog":
			elem = newElement("cim:Analog")
			b.stats.AnalogPoints++
		case class == "Accumulator":
			elem = newElement("cim:Accumulator")
			b.stats.AccumulatorPoints++
		default:
			elem = newElement("cim:Discrete")
			b.stats.DiscretePoints++
		}

		elem.attr("rdf:ID", id)
		elem.child("cim:IdentifiedObject.name", pt.Name)
		elem.child("cim:IdentifiedObject.mRID", id)
		if pt.Description != "" {
			elem.child("cim:IdentifiedObject.description", pt.Description)
		}
		if !control {
			mt := measurementTypes[pt.Type]
			if mt == "" {
				mt = "BI"
			}
			elem.child("cim:Measurement.measurementType", mt)
		}

		if eq := b.equipmentMRID(pt.Name, pt.MapName); eq != "" {
			if control {
				elem.resource("cim:Control.PowerSystemResource", "#"+eq)
			} else {
				elem.resource("cim:Measurement.PowerSystemResource", "#"+eq)
			}
		}

		if pt.Address != "" {
			elem.child("ver:SCADAPoint.dnp3Address", pt.Address)
		}
		elem.child("ver:SCADAPoint.protocol", "DNP3")
		elem.child("ver:SCADAPoint.dataType", pt.Type)
		elem.child("ver:SCADAPoint.tagName", pt.Name)
		if pt.SourceFile != "" {
			elem.child("ver:SCADAPoint.sourceFile", pt.SourceFile)
		}

		b.measurements = append(b.measurements, elem)

		rtuID := b.rtuMRID(pt.MapName)
		if rtuID == "" {
			continue
		}
		if control {
			rcID := makeMRID("rc", b.cfg.Substation, pt.Name)
			rc := newElement("cim:RemoteControl").attr("rdf:ID", rcID)
			rc.resource("cim:RemoteControl.Control", "#"+id)
			rc.resource("cim:RemotePoint.RemoteUnit", "#"+rtuID)
			b.remoteControls = append(b.remoteControls, rc)
		} else {
			rsID := makeMRID("rs", b.cfg.Substation, pt.Name)
			rs := newElement("cim:RemoteSource").attr("rdf:ID", rsID)
			rs.resource("cim:RemoteSource.MeasurementValue", "#"+id)
			rs.resource("cim:RemotePoint.RemoteUnit", "#"+rtuID)
			b.remoteSources = append(b.remoteSources, rs)
		}
	}
}

// equipmentMRID resolves an EQ profile equipment reference for a
// point: exact tag name first, then the map name.
func (b *Builder) equipmentMRID(tagName, mapName string) string {
	if id, ok := b.cfg.EquipmentMapping[tagName]; ok {
		return id
	}
	if mapName != "" {
		if id, ok := b.cfg.EquipmentMapping[mapName]; ok {
			return id
		}
	}
	return ""
}

// rtuMRID finds the RemoteUnit for a map name. A profile with exactly
// one unit absorbs unmatched points; ambiguity drops the link instead.
func (b *Builder) rtuMRID(mapName string) string {
	if mapName != "" {
		if id, ok := b.unitMRIDs[mapName]; ok {
			return id
		}
	}
	if len(b.unitOrder) == 1 {
		return b.unitMRIDs[b.unitOrder[0]]
	}
	return ""
}

// Serialize renders the accumulated profile as RDF/XML.
func (b *Builder) Serialize() []byte {
	root := newElement("rdf:RDF").
		attr("xmlns:rdf", rdfNS).
		attr("xmlns:cim", cimNS).
		attr("xmlns:md", mdNS).
		attr("xmlns:ver", verNS)

	created := b.cfg.Created
	if created.IsZero() {
		created = time.Now()
	}
	ts := created.UTC().Format("2006-01-02T15:04:05Z")

	header := newElement("md:FullModel").attr("rdf:about", b.modelURN)
	header.child("md:Model.scenarioTime", ts)
	header.child("md:Model.created", ts)
	header.child("md:Model.description", b.description())
	header.child("md:Model.modelingAuthoritySet", "http://verance.ai/SA/"+b.cfg.Substation)
	header.child("md:Model.profile", profileURI)
	if b.cfg.EQModelURN != "" {
		header.resource("md:Model.DependentOn", b.cfg.EQModelURN)
	}
	if b.cfg.PEModelURN != "" {
		header.resource("md:Model.DependentOn", b.cfg.PEModelURN)
	}

	root.append(header)
	root.append(b.unitElems...)
	root.append(b.measurements...)
	root.append(b.remoteSources...)
	root.append(b.remoteControls...)

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	root.write(&buf, 0)
	return buf.Bytes()
}

func (b *Builder) description() string {
	if b.cfg.Description != "" {
		return b.cfg.Description
	}
	return "SCADA Configuration profile for " + b.cfg.Substation
}

// Stats reports the accumulated generation counters.
func (b *Builder) Stats() Stats {
	s := b.stats
	s.RemoteUnits = len(b.unitOrder)
	s.TotalPoints = s.AnalogPoints + s.DiscretePoints + s.AccumulatorPoints + s.ControlPoints
	s.Substation = b.cfg.Substation
	s.ModelURN = b.modelURN
	return s
}

// Generate builds the profile for one parse aggregate.
func Generate(res *rtacxml.ParseResult, cfg Config) ([]byte, Stats) {
	b := NewBuilder(cfg)
	b.AddDevices(res.Devices)
	b.AddPoints(res.Points)
	return b.Serialize(), b.Stats()
}

// Profile identifiers are v5 UUIDs over "prefix|part|part" seeds, so
// regenerating from the same export yields identical mRIDs.
func deterministicUUID(namespace string, parts ...string) string {
	seed := strings.Join(append([]string{namespace}, parts...), "|")
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String()
}

func makeMRID(prefix string, parts ...string) string {
	return "_" + prefix + "-" + deterministicUUID(prefix, parts...)
}
