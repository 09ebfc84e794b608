package rtacxml

// Point is one extracted point record. Address is a string because
// RTAC exports occasionally carry non-numeric point numbers.
// A Point with an empty Name is never retained.
type Point struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Type        string `json:"type"`
	Units       string `json:"units"`
	Description string `json:"description"`
	MapName     string `json:"map_name,omitempty"`
	SourceFile  string `json:"source_file"`
}

// ServerDevice is a DNP server device with a resolved map name.
// Devices whose map name cannot be resolved are not recorded at all;
// downstream consumers never see a device without one.
type ServerDevice struct {
	DeviceName string `json:"device_name"`
	MapName    string `json:"map_name"`
	SourceFile string `json:"source_file"`
}

// TagMapping describes one Tag Processor row translating a source
// expression into a destination tag. RowIndex is the 1-based position
// of the row within its source document, kept for provenance only.
// Settings retains the full column->value map of the row.
type TagMapping struct {
	DestinationTag   string            `json:"destination_tag"`
	SourceExpression string            `json:"source_expression"`
	DataType         string            `json:"data_type"`
	RowIndex         int               `json:"row_index"`
	Comment          string            `json:"comment"`
	Settings         map[string]string `json:"settings,omitempty"`
}

// ParseResult is the universal output of a single-document parse.
// Exactly one of the extractor paths populated it; results are never
// merged across shapes.
type ParseResult struct {
	Devices     []ServerDevice `json:"devices"`
	Points      []Point        `json:"points"`
	TagMappings []TagMapping   `json:"tag_mappings"`
}
