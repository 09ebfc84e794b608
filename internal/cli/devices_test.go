package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevicesCommandText(t *testing.T) {
	dir := writeExportDir(t)

	out, _, err := executeCommand("devices", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "SEL_RTAC_1")
	assert.Contains(t, out, "map=MAP_A")
	assert.Contains(t, out, "source=01_device.xml")
}

func TestDevicesCommandJSON(t *testing.T) {
	dir := writeExportDir(t)

	out, _, err := executeCommand("--format", "json", "devices", dir)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	devices, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, devices, 1)
}

func TestDevicesCommandCSV(t *testing.T) {
	dir := writeExportDir(t)

	out, _, err := executeCommand("--format", "csv", "devices", dir)
	require.NoError(t, err)

	assert.Contains(t, out, `"Device","Map Name","Source File"`)
	assert.Contains(t, out, `"SEL_RTAC_1","MAP_A","01_device.xml"`)
}

func TestDevicesCommandMissingDir(t *testing.T) {
	_, _, err := executeCommand("devices", "/nonexistent-dir-for-test")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
