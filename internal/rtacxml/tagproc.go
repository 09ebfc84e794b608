package rtacxml

// Tag Processor exports nest their rows at inconsistent depths, so row
// discovery is structural: a node that owns Row children is a row
// collection; a node that owns SettingPage children is recursed page by
// page; anything else is recursed wholesale.

// extractTagMappings handles the Tag Processor shape. Every discovered
// row gets a 1-based index across the whole document, whether or not it
// yields a mapping; rows without a DestinationTagName are skipped
// silently.
func extractTagMappings(root *Node, filename string) []TagMapping {
	var mappings []TagMapping

	for i, row := range collectRows(root) {
		settings := tagProcessorRow(row)

		dest := settings["DestinationTagName"]
		if dest == "" {
			continue
		}

		mappings = append(mappings, TagMapping{
			DestinationTag:   dest,
			SourceExpression: settings["SourceExpression"],
			DataType:         settings["DTDataType"],
			RowIndex:         i + 1,
			Comment: firstNonEmpty(
				settings["Comment"],
				settings["Description"],
				settings["LoggingOnMessage"],
			),
			Settings: settings,
		})
	}

	return mappings
}

// collectRows finds the document's row collections. The first structural
// match wins per node: Row children, else SettingPage recursion, else
// recursion into every child with all results flattened.
func collectRows(n *Node) []*Node {
	if rows := n.ChildrenNamed("Row"); len(rows) > 0 {
		return rows
	}
	if pages := n.ChildrenNamed("SettingPage"); len(pages) > 0 {
		var rows []*Node
		for _, page := range pages {
			rows = append(rows, collectRows(page)...)
		}
		return rows
	}
	var rows []*Node
	for _, c := range n.Children {
		rows = append(rows, collectRows(c)...)
	}
	return rows
}

// tagProcessorRow builds the row's column->value map. Rows in Setting
// form use the Column/Value pairs; rows carrying their columns as plain
// child elements use element name -> text.
func tagProcessorRow(row *Node) map[string]string {
	if len(row.ChildrenNamed("Setting")) > 0 {
		return RowSettings(row)
	}
	m := make(map[string]string)
	for _, c := range row.Children {
		m[c.Name] = c.TrimmedText()
	}
	return m
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
