package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewerk/pipecheck/pkg/pipeline"
)

const sampleDoc = `class_id: com-gatewerk-pipeline
property_map:
  author: jane
  purpose: Load orders into the warehouse
  notes: |
    mentions 11111111-1111-1111-1111-000000000099 which must not be counted
snap_map:
  11111111-1111-1111-1111-000000000000:
    class_id: com-gatewerk-csv-reader
    version: 2
    output:
      output0:
        view_type: document
  11111111-1111-1111-1111-000000000001:
    class_id: com-gatewerk-mapper
    version: 1
    input:
      input0:
        view_type: document
    output:
      output0:
        view_type: document
link_map:
  link100:
    src_id: 11111111-1111-1111-1111-000000000000
    src_view: output0
    dst_id: 11111111-1111-1111-1111-000000000001
    dst_view: input0
`

func TestScanSampleDocument(t *testing.T) {
	ex, err := Scan([]byte(sampleDoc))
	require.NoError(t, err)

	assert.True(t, ex.HasClassID)
	assert.Equal(t, pipeline.ClassID, ex.ClassIDValue)
	assert.True(t, ex.HasProperties)
	assert.True(t, ex.HasSnapMap)
	assert.True(t, ex.HasLinkMap)

	// The identifier inside the notes text must not be counted.
	assert.Equal(t, []string{
		"11111111-1111-1111-1111-000000000000",
		"11111111-1111-1111-1111-000000000001",
	}, ex.NodeIDs)

	require.Len(t, ex.Links, 1)
	assert.Equal(t, "link100", ex.Links[0].LinkID)
	assert.Equal(t, "11111111-1111-1111-1111-000000000000", ex.Links[0].SrcID)
	assert.Equal(t, "11111111-1111-1111-1111-000000000001", ex.Links[0].DstID)
}

func TestScanDuplicateNodeKeys(t *testing.T) {
	doc := `class_id: com-gatewerk-pipeline
property_map:
  author: jane
snap_map:
  11111111-1111-1111-1111-000000000000:
    class_id: com-gatewerk-csv-reader
    version: 1
  11111111-1111-1111-1111-000000000000:
    class_id: com-gatewerk-csv-reader
    version: 1
link_map: {}
`
	ex, err := Scan([]byte(doc))
	require.NoError(t, err)

	// Raw occurrences preserved so the bookkeeping cross-check can fire.
	assert.Len(t, ex.NodeIDs, 2)
	assert.Equal(t, 1, ex.NodeCount())
}

func TestScanMalformedInput(t *testing.T) {
	_, err := Scan([]byte("snap_map: [unterminated\n  nonsense: ["))
	assert.Error(t, err)
}

func TestScanMalformedNodeIdentifier(t *testing.T) {
	doc := `class_id: com-gatewerk-pipeline
property_map:
  author: jane
snap_map:
  not-a-node-id:
    class_id: com-gatewerk-csv-reader
    version: 1
link_map: {}
`
	ex, err := Scan([]byte(doc))
	require.NoError(t, err)

	assert.Empty(t, ex.NodeIDs)
	assert.Equal(t, []string{"not-a-node-id"}, ex.MalformedIDs)
}

func TestScanQuotedKeysAndValues(t *testing.T) {
	doc := `"class_id": "com-gatewerk-pipeline"
property_map:
  author: jane
snap_map:
  "11111111-1111-1111-1111-000000000000":
    class_id: com-gatewerk-csv-reader
    version: 1
link_map: {}
`
	ex, err := Scan([]byte(doc))
	require.NoError(t, err)

	assert.True(t, ex.HasClassID)
	assert.Equal(t, pipeline.ClassID, ex.ClassIDValue)
	assert.Equal(t, []string{"11111111-1111-1111-1111-000000000000"}, ex.NodeIDs)
}

func TestScanWideIndentDocument(t *testing.T) {
	// Same document as sampleDoc but authored with 4-space indentation;
	// the scanner learns each section's entry indent from its first entry.
	doc := `class_id: com-gatewerk-pipeline
property_map:
    author: jane
snap_map:
    11111111-1111-1111-1111-000000000000:
        class_id: com-gatewerk-csv-reader
        version: 2
        output:
            output0:
                view_type: document
    11111111-1111-1111-1111-000000000001:
        class_id: com-gatewerk-mapper
        version: 1
link_map:
    link100:
        src_id: 11111111-1111-1111-1111-000000000000
        src_view: output0
        dst_id: 11111111-1111-1111-1111-000000000001
        dst_view: input0
`
	ex, err := Scan([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"11111111-1111-1111-1111-000000000000",
		"11111111-1111-1111-1111-000000000001",
	}, ex.NodeIDs)

	require.Len(t, ex.Links, 1)
	assert.Equal(t, "11111111-1111-1111-1111-000000000000", ex.Links[0].SrcID)
	assert.Equal(t, "11111111-1111-1111-1111-000000000001", ex.Links[0].DstID)
}

func TestScanInlineComments(t *testing.T) {
	doc := `class_id: com-gatewerk-pipeline # main pipeline
property_map:
  author: jane
snap_map:
  11111111-1111-1111-1111-000000000000: # csv reader
    class_id: com-gatewerk-csv-reader
    version: 1
link_map: {}
`
	ex, err := Scan([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, pipeline.ClassID, ex.ClassIDValue)
	assert.Equal(t, []string{"11111111-1111-1111-1111-000000000000"}, ex.NodeIDs)
}

func TestScanHashInsideValueIsKept(t *testing.T) {
	// A '#' without preceding whitespace does not open a comment.
	doc := `class_id: com-gatewerk-pipeline
property_map:
  author: jane#doe
snap_map:
  11111111-1111-1111-1111-000000000000:
    class_id: com-gatewerk-csv-reader
    version: 1
link_map: {}
`
	ex, err := Scan([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, pipeline.ClassID, ex.ClassIDValue)
	assert.Len(t, ex.NodeIDs, 1)
}

func TestScanEmptySections(t *testing.T) {
	doc := `class_id: com-gatewerk-pipeline
property_map:
  author: jane
snap_map: {}
link_map: {}
`
	ex, err := Scan([]byte(doc))
	require.NoError(t, err)

	assert.True(t, ex.HasSnapMap)
	assert.True(t, ex.HasLinkMap)
	assert.Empty(t, ex.NodeIDs)
	assert.Empty(t, ex.Links)
}
