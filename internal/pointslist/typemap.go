package pointslist

// basePointTypes is the fixed data-type to point-type table. Profile
// entries may add to it but never override these.
var basePointTypes = map[string]string{
	"MV":      "AI",
	"CMV":     "AI",
	"INT":     "AI",
	"SPS":     "BI",
	"BOOL":    "BI",
	"BCR":     "CT",
	"operAPC": "AO",
	"operSPC": "BO",
}

// controlTypes are the writable/operate-class data types. A mapping
// whose source point carries one of these represents a command flowing
// server to device rather than telemetry flowing device to server.
var controlTypes = map[string]bool{
	"operAPC": true,
	"operSPC": true,
}

// pointTypeRank orders rows within a device for display.
var pointTypeRank = map[string]int{
	"BI": 1,
	"AI": 2,
	"BO": 3,
	"AO": 4,
	"CT": 5,
}

const unknownRank = 999

// pointTypeFor derives the display point type from a protocol data
// type. The base table is consulted first, then the profile's
// extensions; unmapped types yield "".
func pointTypeFor(dataType string, profile *Profile) string {
	if pt, ok := basePointTypes[dataType]; ok {
		return pt
	}
	if profile != nil {
		if pt, ok := profile.TypeMap[dataType]; ok {
			return pt
		}
	}
	return ""
}

func rankOf(pointType string) int {
	if r, ok := pointTypeRank[pointType]; ok {
		return r
	}
	return unknownRank
}
