package pointslist

import (
	"fmt"
	"io"
	"strings"

	"github.com/verance/rtac/internal/rtacxml"
)

// FlattenPoints maps raw point records onto the profile's column
// layout: one map per point, keyed by column title. Unknown fields
// yield empty strings so a profile typo degrades instead of failing.
func FlattenPoints(points []rtacxml.Point, columns []Column) []map[string]string {
	rows := make([]map[string]string, 0, len(points))
	for _, p := range points {
		row := make(map[string]string, len(columns))
		for _, c := range columns {
			row[c.Title] = pointField(&p, c.Field)
		}
		rows = append(rows, row)
	}
	return rows
}

func pointField(p *rtacxml.Point, field string) string {
	switch field {
	case "name":
		return p.Name
	case "address":
		return p.Address
	case "type":
		return p.Type
	case "units":
		return p.Units
	case "description":
		return p.Description
	case "map_name":
		return p.MapName
	case "source_file":
		return p.SourceFile
	}
	return ""
}

// WriteCSV writes flattened points as CSV. The header row is the
// column titles in profile order. Every value is quoted and embedded
// quotes are doubled; downstream spreadsheet tooling chokes on bare
// commas in tag comments otherwise.
func WriteCSV(w io.Writer, points []rtacxml.Point, columns []Column) error {
	if err := writeCSVRecord(w, columnTitles(columns)); err != nil {
		return err
	}
	for i := range points {
		record := make([]string, len(columns))
		for j, c := range columns {
			record[j] = pointField(&points[i], c.Field)
		}
		if err := writeCSVRecord(w, record); err != nil {
			return err
		}
	}
	return nil
}

// WriteRowsCSV writes generated points-list rows as CSV, one device
// section after another in the given device-name order.
func WriteRowsCSV(w io.Writer, byDevice ByDevice, deviceOrder []string) error {
	header := []string{"Device", "Map Name", "Destination", "Source", "Data Type", "Point Type", "Index", "Comment"}
	if err := writeCSVRecord(w, header); err != nil {
		return err
	}
	for _, name := range deviceOrder {
		dev, ok := byDevice[name]
		if !ok {
			continue
		}
		for _, r := range dev.Rows {
			record := []string{name, dev.MapName, r.Destination, r.Source, r.DataType, r.PointType, r.Index, r.Comment}
			if err := writeCSVRecord(w, record); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteDevicesCSV writes resolved server devices as CSV, same quoting
// contract as the other exports.
func WriteDevicesCSV(w io.Writer, devices []rtacxml.ServerDevice) error {
	if err := writeCSVRecord(w, []string{"Device", "Map Name", "Source File"}); err != nil {
		return err
	}
	for _, d := range devices {
		if err := writeCSVRecord(w, []string{d.DeviceName, d.MapName, d.SourceFile}); err != nil {
			return err
		}
	}
	return nil
}

func columnTitles(columns []Column) []string {
	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.Title
	}
	return titles
}

// writeCSVRecord quotes unconditionally, unlike encoding/csv, to match
// the export contract consumers already parse.
func writeCSVRecord(w io.Writer, record []string) error {
	quoted := make([]string, len(record))
	for i, v := range record {
		quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	_, err := fmt.Fprintf(w, "%s\r\n", strings.Join(quoted, ","))
	return err
}
