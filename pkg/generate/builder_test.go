package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewerk/pipecheck/pkg/loader"
	"github.com/gatewerk/pipecheck/pkg/pipeline"
	"github.com/gatewerk/pipecheck/pkg/validate"
)

func TestBuilderAssignsSequentialIDs(t *testing.T) {
	b := NewBuilder("jane", "test")

	first := b.AddNode("com-gatewerk-csv-reader", 1)
	second := b.AddNode("com-gatewerk-mapper", 1)

	assert.Equal(t, "11111111-1111-1111-1111-000000000000", first)
	assert.Equal(t, "11111111-1111-1111-1111-000000000001", second)
	assert.True(t, pipeline.ValidNodeID(first))
}

func TestBuilderDocumentChain(t *testing.T) {
	b := NewBuilder("jane", "orders")
	b.AddNode("com-gatewerk-csv-reader", 2)
	b.AddNode("com-gatewerk-mapper", 1)
	b.AddNode("com-gatewerk-db-writer", 1)

	doc := b.Document()

	assert.Equal(t, pipeline.ClassID, doc.ClassID)
	assert.Equal(t, "jane", doc.Properties.Author)
	assert.Len(t, doc.Snaps, 3)
	assert.Len(t, doc.Links, 2)

	link := doc.Links["link100"]
	assert.Equal(t, "11111111-1111-1111-1111-000000000000", link.SrcID)
	assert.Equal(t, "11111111-1111-1111-1111-000000000001", link.DstID)
}

func TestGeneratedDocumentPassesBothPaths(t *testing.T) {
	b := NewBuilder("jane", "orders")
	b.AddNode("com-gatewerk-csv-reader", 2)
	b.AddNode("com-gatewerk-mapper", 1)
	b.AddNode("com-gatewerk-db-writer", 1)

	data, err := b.Marshal()
	require.NoError(t, err)

	assert.NoError(t, validate.Fast(data))
	assert.True(t, validate.Strict(data).OK())
}

func TestGeneratedSingleNodeDocument(t *testing.T) {
	b := NewBuilder("jane", "solo")
	b.AddNode("com-gatewerk-csv-reader", 1)

	data, err := b.Marshal()
	require.NoError(t, err)

	assert.NoError(t, validate.Fast(data))
}

func TestBranchingNodeEmitsRenderMap(t *testing.T) {
	b := NewBuilder("jane", "split")
	b.AddNode("com-gatewerk-csv-reader", 1)
	b.AddBranchingNode("com-gatewerk-router", 1, 2)

	data, err := b.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "render_map")
	assert.Contains(t, string(data), "node_positions")

	doc, err := loader.ParseDocument(data)
	require.NoError(t, err)
	router := doc.Snaps["11111111-1111-1111-1111-000000000001"]
	assert.Len(t, router.Outputs, 2)

	assert.NoError(t, validate.Fast(data))
}

func TestMarshalKeyOrderIsStable(t *testing.T) {
	b := NewBuilder("jane", "orders")
	b.AddNode("com-gatewerk-csv-reader", 1)
	b.AddNode("com-gatewerk-mapper", 1)

	data, err := b.Marshal()
	require.NoError(t, err)

	text := string(data)
	assert.Less(t, strings.Index(text, "class_id"), strings.Index(text, "property_map"))
	assert.Less(t, strings.Index(text, "property_map"), strings.Index(text, "snap_map"))
	assert.Less(t, strings.Index(text, "snap_map"), strings.Index(text, "link_map"))
	assert.Less(t, strings.Index(text, "000000000000"), strings.Index(text, "000000000001"))
}
