package rtacxml

import "strings"

// extractTagListPoints pulls point rows out of one TagList element.
// Rows live directly under SettingPage elements. A row is kept only if
// Enable equals "true" (case-insensitive) and its Tag Name is non-empty.
// mapName may be "" for standalone TagList documents.
func extractTagListPoints(tl *Node, filename, mapName string) []Point {
	var points []Point

	for _, page := range tl.FindAll("SettingPage") {
		for _, row := range page.ChildrenNamed("Row") {
			settings := RowSettings(row)
			if !strings.EqualFold(settings["Enable"], "true") {
				continue
			}

			p := Point{
				Name:        settings["Tag Name"],
				Address:     settings["Point Number"],
				Type:        settings["Tag Type"],
				Description: settings["Comment"],
				MapName:     mapName,
				SourceFile:  filename,
			}
			if p.Name == "" {
				continue
			}
			points = append(points, p)
		}
	}

	return points
}
