package rtacxml

import "strings"

// pointLikeNames are the element names (lowercased) the fallback
// extractor treats as points.
var pointLikeNames = map[string]bool{
	"point":       true,
	"tag":         true,
	"datapoint":   true,
	"devicepoint": true,
}

// extractFallbackPoints is the last-resort path for unrecognized
// shapes: scan the whole tree for point-like elements and assemble a
// best-effort Point from commonly named children and attributes. This
// path never fails; elements that yield no name are dropped.
func extractFallbackPoints(root *Node, filename string) []Point {
	var points []Point

	root.Walk(func(n *Node) {
		if !pointLikeNames[strings.ToLower(n.Name)] {
			return
		}
		p := genericPoint(n)
		if p.Name == "" {
			p.Name = n.Attr("name", "Name", "id", "Id")
		}
		if p.Name == "" {
			return
		}
		p.SourceFile = filename
		points = append(points, p)
	})

	return points
}

// genericPoint maps commonly named child elements onto Point fields.
// Unrecognized children are ignored rather than collected; the fallback
// promises shape-stable output, not completeness.
func genericPoint(elem *Node) Point {
	var p Point
	for _, c := range elem.Children {
		text := c.TrimmedText()
		switch strings.ToLower(c.Name) {
		case "name", "id", "tag", "tagname":
			p.Name = text
		case "address", "addr", "ioaddress":
			p.Address = text
		case "type", "pointtype", "datatype":
			p.Type = text
		case "units", "unit", "uom":
			p.Units = text
		case "description", "desc":
			p.Description = text
		}
	}
	return p
}
