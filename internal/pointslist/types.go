package pointslist

// Row is one line of a generated points list.
type Row struct {
	Destination string `json:"destination"`
	Source      string `json:"source"`
	DataType    string `json:"data_type"`
	PointType   string `json:"point_type"`
	Index       string `json:"index"`
	Comment     string `json:"comment"`
	MapName     string `json:"map_name"`
}

// DeviceRows is the points list of one DNP server device.
// Duplicates counts how many rows were flagged as duplicates during
// generation; the rows themselves carry a "[DUPLICATE] " comment prefix.
type DeviceRows struct {
	MapName    string `json:"map_name"`
	Rows       []Row  `json:"rows"`
	Duplicates int    `json:"duplicates"`
}

// ByDevice maps device names to their generated points lists. Map
// names with no matching ServerDevice are absent: devices define the
// grouping keys, not maps.
type ByDevice map[string]*DeviceRows

// duplicateMarker prefixes the comment of every row after the first
// with an identical deduplication key.
const duplicateMarker = "[DUPLICATE] "
