package rtacxml

// resolveMapName locates the device's "Map Name" declaration inside the
// connection's nested setting pages. The declaration is a row whose
// first setting is {Column:"Setting", Value:"Map Name"} and whose second
// setting is {Column:"Value", Value:<map name>}.
//
// Search order is declaration order across pages then rows; the first
// match wins and the search stops there. Later declarations are ignored
// even if they differ - kept for compatibility with the upstream
// tooling's linear scan.
//
// Returns "" when no declaration exists; the caller must then treat the
// device as unrepresentable.
func resolveMapName(conn *Node) string {
	// FindAll visits pages then their rows in document order, which is
	// exactly the required declaration-order scan.
	for _, row := range conn.FindAll("Row") {
		settings := row.ChildrenNamed("Setting")
		if len(settings) < 2 {
			continue
		}
		first := settings[0]
		if first.Child("Column").TrimmedText() != "Setting" ||
			first.Child("Value").TrimmedText() != "Map Name" {
			continue
		}
		second := settings[1]
		if second.Child("Column").TrimmedText() != "Value" {
			continue
		}
		if v := second.Child("Value").TrimmedText(); v != "" {
			return v
		}
	}
	return ""
}
