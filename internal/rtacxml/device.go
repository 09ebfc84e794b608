package rtacxml

// extractDevices handles the Device shape: every Device element in the
// tree, wherever it sits. Only DNPServer devices are traversed further;
// other protocols contribute neither a ServerDevice nor points.
func extractDevices(root *Node, filename string) ([]ServerDevice, []Point) {
	var devices []ServerDevice
	var points []Point

	for _, device := range root.AllNamed("Device") {
		name := device.Find("Name").TrimmedText()
		if name == "" {
			name = filename
		}

		conn := device.Find("Connection")
		if conn == nil || conn.Child("Protocol").TrimmedText() != "DNPServer" {
			continue
		}

		mapName := resolveMapName(conn)
		if mapName != "" {
			devices = append(devices, ServerDevice{
				DeviceName: name,
				MapName:    mapName,
				SourceFile: filename,
			})
		}

		// Tag lists are parsed even when the map name is missing;
		// such points simply carry an empty MapName.
		for _, tl := range device.FindAll("TagList") {
			points = append(points, extractTagListPoints(tl, filename, mapName)...)
		}
	}

	return devices, points
}
