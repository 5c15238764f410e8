// Package generate builds pipeline documents programmatically. Generated
// documents satisfy the structural invariants by construction: nodes get
// sequential marker identifiers and are linked into a linear chain, so a
// pipeline with N nodes always carries N-1 links.
package generate

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/gatewerk/pipecheck/pkg/pipeline"
)

// Builder accumulates nodes and emits a complete pipeline document.
type Builder struct {
	author  string
	purpose string
	nodes   []nodeSpec
}

type nodeSpec struct {
	id      string
	classID string
	version int
	outputs int
}

// NewBuilder creates a builder with the given authoring metadata.
func NewBuilder(author, purpose string) *Builder {
	return &Builder{
		author:  author,
		purpose: purpose,
	}
}

// AddNode appends a single-output node to the chain and returns its
// assigned identifier.
func (b *Builder) AddNode(classID string, version int) string {
	return b.AddBranchingNode(classID, version, 1)
}

// AddBranchingNode appends a node with the given number of output views.
// Branching is expressed through multiple outputs, never through extra
// links.
func (b *Builder) AddBranchingNode(classID string, version int, outputs int) string {
	if outputs < 1 {
		outputs = 1
	}
	id := fmt.Sprintf("%s%012d", pipeline.NodeIDMarker, len(b.nodes))
	b.nodes = append(b.nodes, nodeSpec{
		id:      id,
		classID: classID,
		version: version,
		outputs: outputs,
	})
	return id
}

// Document returns the typed model of the pipeline built so far.
func (b *Builder) Document() *pipeline.Document {
	doc := &pipeline.Document{
		ClassID: pipeline.ClassID,
		Properties: pipeline.Properties{
			Author:  b.author,
			Purpose: b.purpose,
		},
		Snaps: make(map[string]pipeline.Node, len(b.nodes)),
		Links: make(map[string]pipeline.Link),
	}

	for i, spec := range b.nodes {
		node := pipeline.Node{
			ClassID: spec.classID,
			Version: spec.version,
			Outputs: make(map[string]pipeline.View, spec.outputs),
		}
		if i > 0 {
			node.Inputs = map[string]pipeline.View{
				"input0": {ViewType: pipeline.ViewDocument},
			}
		}
		for o := 0; o < spec.outputs; o++ {
			node.Outputs[fmt.Sprintf("output%d", o)] = pipeline.View{ViewType: pipeline.ViewDocument}
		}
		doc.Snaps[spec.id] = node

		if i > 0 {
			doc.Links[fmt.Sprintf("link%d", 100+i-1)] = pipeline.Link{
				SrcID:   b.nodes[i-1].id,
				SrcView: "output0",
				DstID:   spec.id,
				DstView: "input0",
			}
		}
	}

	if render := b.renderMap(); render != nil {
		doc.Render = render
	}
	return doc
}

// Marshal emits the document as YAML with stable key order, so generated
// pipelines produce reviewable diffs.
func (b *Builder) Marshal() ([]byte, error) {
	snaps := yaml.MapSlice{}
	for i, spec := range b.nodes {
		node := yaml.MapSlice{
			{Key: "class_id", Value: spec.classID},
			{Key: "version", Value: spec.version},
		}
		if i > 0 {
			node = append(node, yaml.MapItem{Key: "input", Value: yaml.MapSlice{
				{Key: "input0", Value: yaml.MapSlice{{Key: "view_type", Value: pipeline.ViewDocument}}},
			}})
		}
		outputs := yaml.MapSlice{}
		for o := 0; o < spec.outputs; o++ {
			outputs = append(outputs, yaml.MapItem{
				Key:   fmt.Sprintf("output%d", o),
				Value: yaml.MapSlice{{Key: "view_type", Value: pipeline.ViewDocument}},
			})
		}
		node = append(node, yaml.MapItem{Key: "output", Value: outputs})
		snaps = append(snaps, yaml.MapItem{Key: spec.id, Value: node})
	}

	links := yaml.MapSlice{}
	for i := 1; i < len(b.nodes); i++ {
		links = append(links, yaml.MapItem{
			Key: fmt.Sprintf("link%d", 100+i-1),
			Value: yaml.MapSlice{
				{Key: "src_id", Value: b.nodes[i-1].id},
				{Key: "src_view", Value: "output0"},
				{Key: "dst_id", Value: b.nodes[i].id},
				{Key: "dst_view", Value: "input0"},
			},
		})
	}

	doc := yaml.MapSlice{
		{Key: pipeline.KeyClassID, Value: pipeline.ClassID},
		{Key: pipeline.KeyProperty, Value: yaml.MapSlice{
			{Key: "author", Value: b.author},
			{Key: "purpose", Value: b.purpose},
		}},
		{Key: pipeline.KeySnapMap, Value: snaps},
		{Key: pipeline.KeyLinkMap, Value: links},
	}

	if render := b.renderMap(); render != nil {
		positions := yaml.MapSlice{}
		for i, spec := range b.nodes {
			positions = append(positions, yaml.MapItem{Key: spec.id, Value: yaml.MapSlice{
				{Key: "x", Value: i * 120},
				{Key: "y", Value: 0},
			}})
		}
		doc = append(doc, yaml.MapItem{Key: pipeline.KeyRenderMap, Value: yaml.MapSlice{
			{Key: "node_positions", Value: positions},
		}})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return out, nil
}

// renderMap returns layout data when any node branches, since multi-output
// nodes are the only case where layout is structurally inspected.
func (b *Builder) renderMap() map[string]interface{} {
	branching := false
	for _, spec := range b.nodes {
		if spec.outputs > 1 {
			branching = true
			break
		}
	}
	if !branching {
		return nil
	}

	positions := make(map[string]interface{}, len(b.nodes))
	for i, spec := range b.nodes {
		positions[spec.id] = map[string]interface{}{"x": i * 120, "y": 0}
	}
	return map[string]interface{}{"node_positions": positions}
}
