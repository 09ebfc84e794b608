package pointslist

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/verance/rtac/internal/rtacxml"
)

// sourceOperatorCutset holds the operator characters stripped from the
// end of the first expression token when recovering the source tag.
const sourceOperatorCutset = "()<>=!-+*/%"

// SourceTag extracts the source tag name from a tag processor
// expression: the first whitespace-separated token with trailing
// operator characters removed. An empty expression yields "".
func SourceTag(expression string) string {
	fields := strings.Fields(expression)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimRight(fields[0], sourceOperatorCutset)
}

// Generate builds per-device points lists from one parse aggregate.
// profile may be nil; the fixed base type table still applies.
//
// For every tag mapping the canonical, device-resident point record is
// resolved by direction: control mappings (source data type operAPC or
// operSPC) take it from the source point, monitored values look it up
// by destination tag. Mappings with no canonical record, or whose
// record carries no map name, are dropped. Duplicate rows (same device
// point, source, data type and index) are kept but flagged.
func Generate(res *rtacxml.ParseResult, profile *Profile) ByDevice {
	// First occurrence wins when several points share a name; RTAC
	// exports repeat tags across files and the records are identical
	// in practice.
	pointsByName := make(map[string]*rtacxml.Point, len(res.Points))
	for i := range res.Points {
		p := &res.Points[i]
		if _, seen := pointsByName[p.Name]; !seen {
			pointsByName[p.Name] = p
		}
	}

	rowsByMap := make(map[string][]Row)
	dupsByMap := make(map[string]int)
	seen := make(map[string]bool)

	for _, m := range res.TagMappings {
		sourceTag := SourceTag(m.SourceExpression)

		var sourceType string
		if sp, ok := pointsByName[sourceTag]; ok {
			sourceType = sp.Type
		}

		// Control commands flow server->device via the source tag;
		// telemetry flows device->server via the destination tag. The
		// device-resident record differs accordingly.
		var canonical *rtacxml.Point
		if controlTypes[sourceType] {
			canonical = pointsByName[sourceTag]
		} else {
			canonical = pointsByName[m.DestinationTag]
		}
		if canonical == nil || canonical.MapName == "" {
			continue
		}

		row := Row{
			Destination: m.DestinationTag,
			Source:      sourceTag,
			DataType:    m.DataType,
			PointType:   pointTypeFor(m.DataType, profile),
			Index:       canonical.Address,
			Comment:     m.Comment,
			MapName:     canonical.MapName,
		}

		key := fmt.Sprintf("%s|%s|%s|%s", canonical.Name, row.Source, row.DataType, row.Index)
		if seen[key] {
			dupsByMap[canonical.MapName]++
			row.Comment = duplicateMarker + row.Comment
		}
		seen[key] = true

		rowsByMap[canonical.MapName] = append(rowsByMap[canonical.MapName], row)
	}

	out := make(ByDevice)
	for _, dev := range res.Devices {
		rows := append([]Row(nil), rowsByMap[dev.MapName]...)
		sortRows(rows)
		out[dev.DeviceName] = &DeviceRows{
			MapName:    dev.MapName,
			Rows:       rows,
			Duplicates: dupsByMap[dev.MapName],
		}
	}
	return out
}

// sortRows orders rows by point-type rank, ties broken by numeric
// index. Non-numeric and empty indices sort as 0. The sort is stable so
// equal keys keep mapping iteration order.
func sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := rankOf(rows[i].PointType), rankOf(rows[j].PointType)
		if ri != rj {
			return ri < rj
		}
		return numericIndex(rows[i].Index) < numericIndex(rows[j].Index)
	})
}

func numericIndex(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
