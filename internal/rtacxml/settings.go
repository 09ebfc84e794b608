package rtacxml

// Row settings are Setting elements carrying a Column/Value pair:
//
//	<Row>
//	  <Setting><Column>Tag Name</Column><Value>MAP_A.BKR1</Value></Setting>
//	  ...
//	</Row>
//
// Order is semantically meaningful for map-name resolution, so the
// helpers below preserve it. Lookups never fail: a missing column is an
// empty string.

// SettingValue returns the Value of the first Setting in the row whose
// Column equals column, or "".
func SettingValue(row *Node, column string) string {
	for _, s := range row.ChildrenNamed("Setting") {
		if s.Child("Column").TrimmedText() == column {
			return s.Child("Value").TrimmedText()
		}
	}
	return ""
}

// RowSettings flattens a row's settings into a column->value map.
// Later duplicate columns overwrite earlier ones; the export format
// does not define which wins, and last-write matches how the upstream
// tooling reads these rows.
func RowSettings(row *Node) map[string]string {
	m := make(map[string]string)
	for _, s := range row.ChildrenNamed("Setting") {
		col := s.Child("Column")
		val := s.Child("Value")
		if col == nil || val == nil {
			continue
		}
		m[col.TrimmedText()] = val.TrimmedText()
	}
	return m
}
