package rtacxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deviceExport = `
<Export>
	<Device>
		<Name>SEL_RTAC_1</Name>
		<Connection>
			<Protocol>DNPServer</Protocol>
			<SettingPage>
				<Row>
					<Setting><Column>Setting</Column><Value>Map Name</Value></Setting>
					<Setting><Column>Value</Column><Value>MAP_A</Value></Setting>
				</Row>
			</SettingPage>
		</Connection>
		<TagList>
			<SettingPage>
				<Row>
					<Setting><Column>Enable</Column><Value>True</Value></Setting>
					<Setting><Column>Tag Name</Column><Value>MAP_A.BKR1</Value></Setting>
					<Setting><Column>Point Number</Column><Value>0</Value></Setting>
					<Setting><Column>Tag Type</Column><Value>SPS</Value></Setting>
					<Setting><Column>Comment</Column><Value>Breaker status</Value></Setting>
				</Row>
				<Row>
					<Setting><Column>Enable</Column><Value>false</Value></Setting>
					<Setting><Column>Tag Name</Column><Value>MAP_A.DISABLED</Value></Setting>
				</Row>
			</SettingPage>
		</TagList>
	</Device>
</Export>`

func TestExtractDevices(t *testing.T) {
	root, err := decodeDocument([]byte(deviceExport))
	require.NoError(t, err)

	devices, points := extractDevices(root, "station1.xml")

	require.Len(t, devices, 1)
	assert.Equal(t, ServerDevice{
		DeviceName: "SEL_RTAC_1",
		MapName:    "MAP_A",
		SourceFile: "station1.xml",
	}, devices[0])

	require.Len(t, points, 1)
	assert.Equal(t, Point{
		Name:        "MAP_A.BKR1",
		Address:     "0",
		Type:        "SPS",
		Description: "Breaker status",
		MapName:     "MAP_A",
		SourceFile:  "station1.xml",
	}, points[0])
}

func TestExtractDevicesNonDNPServerSkipped(t *testing.T) {
	root, err := decodeDocument([]byte(`
		<Export>
			<Device>
				<Name>MODBUS_DEV</Name>
				<Connection><Protocol>ModbusClient</Protocol></Connection>
				<TagList>
					<SettingPage>
						<Row>
							<Setting><Column>Enable</Column><Value>true</Value></Setting>
							<Setting><Column>Tag Name</Column><Value>MB.REG1</Value></Setting>
						</Row>
					</SettingPage>
				</TagList>
			</Device>
		</Export>`))
	require.NoError(t, err)

	devices, points := extractDevices(root, "modbus.xml")

	// Protocol gating is strict: no device record and no points.
	assert.Empty(t, devices)
	assert.Empty(t, points)
}

func TestExtractDevicesNoMapName(t *testing.T) {
	root, err := decodeDocument([]byte(`
		<Export>
			<Device>
				<Name>D1</Name>
				<Connection>
					<Protocol>DNPServer</Protocol>
				</Connection>
				<TagList>
					<SettingPage>
						<Row>
							<Setting><Column>Enable</Column><Value>true</Value></Setting>
							<Setting><Column>Tag Name</Column><Value>ORPHAN.PT1</Value></Setting>
						</Row>
					</SettingPage>
				</TagList>
			</Device>
		</Export>`))
	require.NoError(t, err)

	devices, points := extractDevices(root, "f.xml")

	// A device without a resolvable map name is unrepresentable, but
	// its tag lists still yield points with an empty MapName.
	assert.Empty(t, devices)
	require.Len(t, points, 1)
	assert.Equal(t, "ORPHAN.PT1", points[0].Name)
	assert.Equal(t, "", points[0].MapName)
}

func TestExtractDevicesNameFallsBackToFilename(t *testing.T) {
	root, err := decodeDocument([]byte(`
		<Export>
			<Device>
				<Connection>
					<Protocol>DNPServer</Protocol>
					<SettingPage>
						<Row>
							<Setting><Column>Setting</Column><Value>Map Name</Value></Setting>
							<Setting><Column>Value</Column><Value>MAP_X</Value></Setting>
						</Row>
					</SettingPage>
				</Connection>
			</Device>
		</Export>`))
	require.NoError(t, err)

	devices, _ := extractDevices(root, "unnamed.xml")
	require.Len(t, devices, 1)
	assert.Equal(t, "unnamed.xml", devices[0].DeviceName)
}

func TestExtractDevicesMultiple(t *testing.T) {
	root, err := decodeDocument([]byte(`
		<Export>
			<Device>
				<Name>D1</Name>
				<Connection>
					<Protocol>DNPServer</Protocol>
					<SettingPage>
						<Row>
							<Setting><Column>Setting</Column><Value>Map Name</Value></Setting>
							<Setting><Column>Value</Column><Value>MAP_1</Value></Setting>
						</Row>
					</SettingPage>
				</Connection>
			</Device>
			<Device>
				<Name>D2</Name>
				<Connection>
					<Protocol>DNPServer</Protocol>
					<SettingPage>
						<Row>
							<Setting><Column>Setting</Column><Value>Map Name</Value></Setting>
							<Setting><Column>Value</Column><Value>MAP_2</Value></Setting>
						</Row>
					</SettingPage>
				</Connection>
			</Device>
		</Export>`))
	require.NoError(t, err)

	devices, _ := extractDevices(root, "two.xml")
	require.Len(t, devices, 2)
	assert.Equal(t, "MAP_1", devices[0].MapName)
	assert.Equal(t, "MAP_2", devices[1].MapName)
}
