package pointslist

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Column maps a point field to an export column title.
// Recognized fields: name, address, type, units, description,
// map_name, source_file.
type Column struct {
	Field string `json:"field"`
	Title string `json:"title"`
}

// Profile carries optional export customization loaded from a CUE
// file: the export column layout and additional data-type entries
// layered under the fixed base table.
type Profile struct {
	Columns []Column          `json:"columns,omitempty"`
	TypeMap map[string]string `json:"typeMap,omitempty"`
}

// DefaultProfile returns the profile used when no CUE file is given:
// the standard export columns plus the extended type table the RTAC
// tooling historically shipped (dual-point and non-oper control types).
func DefaultProfile() *Profile {
	return &Profile{
		Columns: []Column{
			{Field: "name", Title: "Point Name"},
			{Field: "address", Title: "Address"},
			{Field: "type", Title: "Type"},
			{Field: "units", Title: "Units"},
			{Field: "description", Title: "Description"},
			{Field: "map_name", Title: "Map Name"},
			{Field: "source_file", Title: "Source File"},
		},
		TypeMap: map[string]string{
			"DPS": "BI",
			"INS": "AI",
			"APC": "AO",
			"INC": "AO",
			"SPC": "BO",
			"DPC": "BO",
		},
	}
}

// LoadProfile reads and validates a CUE profile file. Omitted sections
// fall back to the defaults; a present but invalid section is an error.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling profile %s: %w", path, err)
	}

	profile := &Profile{}
	if err := v.Decode(profile); err != nil {
		return nil, fmt.Errorf("decoding profile %s: %w", path, err)
	}

	defaults := DefaultProfile()
	if len(profile.Columns) == 0 {
		profile.Columns = defaults.Columns
	}
	if profile.TypeMap == nil {
		profile.TypeMap = defaults.TypeMap
	}

	if err := profile.validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return profile, nil
}

func (p *Profile) validate() error {
	for i, c := range p.Columns {
		if c.Field == "" {
			return fmt.Errorf("columns[%d]: field is required", i)
		}
		if c.Title == "" {
			return fmt.Errorf("columns[%d] (%s): title is required", i, c.Field)
		}
	}
	for dt, pt := range p.TypeMap {
		if pt == "" {
			return fmt.Errorf("typeMap[%s]: point type must be non-empty", dt)
		}
	}
	return nil
}
