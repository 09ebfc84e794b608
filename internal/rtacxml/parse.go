package rtacxml

import "fmt"

// Parse interprets one RTAC export document. The filename is recorded
// on every extracted record and doubles as the device-name fallback.
//
// Exactly one extractor path runs, chosen by Classify; results are
// never merged across shapes. The only error condition is XML that does
// not parse at all.
func Parse(data []byte, filename string) (*ParseResult, error) {
	if len(data) == 0 {
		return nil, &ParseError{Code: ErrCodeEmpty, File: filename, Err: fmt.Errorf("empty document")}
	}

	root, err := decodeDocument(data)
	if err != nil {
		return nil, &ParseError{Code: ErrCodeMalformed, File: filename, Err: err}
	}

	result := &ParseResult{}
	switch Classify(root, data) {
	case ShapeDevice:
		result.Devices, result.Points = extractDevices(root, filename)
	case ShapeTagList:
		for _, tl := range root.AllNamed("TagList") {
			result.Points = append(result.Points, extractTagListPoints(tl, filename, "")...)
		}
	case ShapeTagProcessor:
		result.TagMappings = extractTagMappings(root, filename)
	case ShapeFallback:
		result.Points = extractFallbackPoints(root, filename)
	}

	return result, nil
}
