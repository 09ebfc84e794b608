package rtacxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, xml string) Shape {
	t.Helper()
	root, err := decodeDocument([]byte(xml))
	require.NoError(t, err)
	return Classify(root, []byte(xml))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want Shape
	}{
		{
			"device anywhere in tree",
			`<Export><Project><Device><Name>D1</Name></Device></Project></Export>`,
			ShapeDevice,
		},
		{
			"device as root",
			`<Device><Name>D1</Name></Device>`,
			ShapeDevice,
		},
		{
			"taglist without device",
			`<Export><TagList/></Export>`,
			ShapeTagList,
		},
		{
			"device wins over taglist",
			`<Export><TagList/><Device/></Export>`,
			ShapeDevice,
		},
		{
			"tag processor by raw marker",
			`<Export><Rows><Row><DestinationTagName>D1</DestinationTagName></Row></Rows></Export>`,
			ShapeTagProcessor,
		},
		{
			"tag processor marker is case-insensitive",
			`<Export><Row><destinationtagname>D1</destinationtagname></Row></Export>`,
			ShapeTagProcessor,
		},
		{
			"source expression marker alone",
			`<Export><Row><SourceExpression>A + B</SourceExpression></Row></Export>`,
			ShapeTagProcessor,
		},
		{
			"taglist wins over tag processor markers",
			`<Export><TagList/><X>SourceExpression</X></Export>`,
			ShapeTagList,
		},
		{
			"fallback",
			`<Unknown><Point><Name>P1</Name></Point></Unknown>`,
			ShapeFallback,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(t, tt.xml))
		})
	}
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "device", ShapeDevice.String())
	assert.Equal(t, "taglist", ShapeTagList.String())
	assert.Equal(t, "tagprocessor", ShapeTagProcessor.String())
	assert.Equal(t, "fallback", ShapeFallback.String())
	assert.Equal(t, "unknown", Shape(42).String())
}
