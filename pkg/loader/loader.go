// Package loader implements the strict extraction path. It fully parses the
// document with yaml.v3 and walks the resulting tree section by section, so
// identifier-shaped tokens appearing outside their proper section (for
// example inside free-text notes) are never miscounted.
package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gatewerk/pipecheck/pkg/pipeline"
)

// Extract parses the document into a YAML tree and produces the same
// extraction result the fast scanner approximates. The tree walk sees
// duplicate mapping keys that a plain map decode would either collapse or
// reject, which keeps the bookkeeping cross-check meaningful on this path
// too.
func Extract(data []byte) (*pipeline.Extraction, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("malformed document: %w", err)
	}

	ex := &pipeline.Extraction{}
	if len(root.Content) == 0 {
		return ex, nil
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return ex, nil
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		key := top.Content[i]
		value := top.Content[i+1]

		switch key.Value {
		case pipeline.KeyClassID:
			ex.HasClassID = true
			ex.ClassIDValue = value.Value
		case pipeline.KeyProperty:
			ex.HasProperties = true
		case pipeline.KeySnapMap:
			ex.HasSnapMap = true
			collectNodeIDs(value, ex)
		case pipeline.KeyLinkMap:
			ex.HasLinkMap = true
			collectLinks(value, ex)
		}
	}

	return ex, nil
}

// ParseDocument decodes the document into the typed model. This is stricter
// than Extract: yaml.v3 rejects duplicate mapping keys during decode, so a
// corrupted document that still extracts may fail here.
func ParseDocument(data []byte) (*pipeline.Document, error) {
	var doc pipeline.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &doc, nil
}

func collectNodeIDs(node *yaml.Node, ex *pipeline.Extraction) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		id := node.Content[i].Value
		if pipeline.ValidNodeID(id) {
			ex.NodeIDs = append(ex.NodeIDs, id)
		} else {
			ex.MalformedIDs = append(ex.MalformedIDs, id)
		}
	}
}

func collectLinks(node *yaml.Node, ex *pipeline.Extraction) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		ep := pipeline.Endpoint{LinkID: node.Content[i].Value}
		body := node.Content[i+1]
		if body.Kind == yaml.MappingNode {
			for j := 0; j+1 < len(body.Content); j += 2 {
				switch body.Content[j].Value {
				case "src_id":
					ep.SrcID = body.Content[j+1].Value
				case "dst_id":
					ep.DstID = body.Content[j+1].Value
				}
			}
		}
		ex.Links = append(ex.Links, ep)
	}
}
