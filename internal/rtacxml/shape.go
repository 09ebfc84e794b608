package rtacxml

import "bytes"

// Shape classifies one RTAC export document. Classification happens
// exactly once per document; extractors never re-probe the tree.
type Shape int

const (
	// ShapeDevice: one or more Device elements anywhere in the tree.
	ShapeDevice Shape = iota
	// ShapeTagList: no Device, but a TagList element exists.
	ShapeTagList
	// ShapeTagProcessor: neither of the above, but the raw text
	// mentions DestinationTagName or SourceExpression.
	ShapeTagProcessor
	// ShapeFallback: none of the above; generic point discovery.
	ShapeFallback
)

// String returns the shape name for logs and CLI output.
func (s Shape) String() string {
	switch s {
	case ShapeDevice:
		return "device"
	case ShapeTagList:
		return "taglist"
	case ShapeTagProcessor:
		return "tagprocessor"
	case ShapeFallback:
		return "fallback"
	}
	return "unknown"
}

var tagProcessorMarkers = [][]byte{
	[]byte("destinationtagname"),
	[]byte("sourceexpression"),
}

// Classify picks the extractor path for a document. Priority is fixed:
// Device, then TagList, then TagProcessor, then Fallback. Shapes are not
// mutually verified - a document matching several patterns is processed
// only by the first.
//
// The TagProcessor check sniffs the raw document text rather than the
// tree because Tag Processor exports bury their columns at wildly
// inconsistent depths.
func Classify(root *Node, raw []byte) Shape {
	if root.Name == "Device" || root.Find("Device") != nil {
		return ShapeDevice
	}
	if root.Name == "TagList" || root.Find("TagList") != nil {
		return ShapeTagList
	}
	lower := bytes.ToLower(raw)
	for _, marker := range tagProcessorMarkers {
		if bytes.Contains(lower, marker) {
			return ShapeTagProcessor
		}
	}
	return ShapeFallback
}
