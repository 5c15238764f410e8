// Package pipeline defines the pipeline document model shared by both
// validation paths.
package pipeline

import "regexp"

// ClassID is the discriminator value every pipeline document must carry.
const ClassID = "com-gatewerk-pipeline"

// Top-level keys of a pipeline document.
const (
	KeyClassID   = "class_id"
	KeyProperty  = "property_map"
	KeySnapMap   = "snap_map"
	KeyLinkMap   = "link_map"
	KeyRenderMap = "render_map"
)

// RequiredKeys lists the top-level keys a document must contain.
// render_map is optional.
var RequiredKeys = []string{KeyClassID, KeyProperty, KeySnapMap, KeyLinkMap}

// NodeIDMarker is the fixed prefix of every node identifier. The trailing
// 12-digit suffix is by convention sequential starting at 0, but only the
// overall shape is validated.
const NodeIDMarker = "11111111-1111-1111-1111-"

var nodeIDPattern = regexp.MustCompile(`^11111111-1111-1111-1111-[0-9]{12}$`)

// ValidNodeID reports whether id matches the fixed node identifier format.
func ValidNodeID(id string) bool {
	return nodeIDPattern.MatchString(id)
}

// Document represents a parsed pipeline document.
type Document struct {
	// ClassID is the document discriminator
	ClassID string `yaml:"class_id" json:"class_id"`

	// Properties holds authoring metadata
	Properties Properties `yaml:"property_map" json:"property_map"`

	// Snaps maps node identifiers to node definitions
	Snaps map[string]Node `yaml:"snap_map" json:"snap_map"`

	// Links maps link identifiers to directed connections
	Links map[string]Link `yaml:"link_map" json:"link_map"`

	// Render holds optional layout information
	Render map[string]interface{} `yaml:"render_map,omitempty" json:"render_map,omitempty"`
}

// Properties contains authoring metadata. Only presence is validated.
type Properties struct {
	// Author of the pipeline
	Author string `yaml:"author" json:"author"`

	// Purpose describes what the pipeline is for
	Purpose string `yaml:"purpose" json:"purpose"`

	// Notes holds free-form text
	Notes string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Node is a single processing unit in the pipeline.
type Node struct {
	// ClassID identifies the node's processing behavior
	ClassID string `yaml:"class_id" json:"class_id"`

	// Version of the node implementation
	Version int `yaml:"version" json:"version"`

	// Inputs maps input view names to view definitions
	Inputs map[string]View `yaml:"input,omitempty" json:"input,omitempty"`

	// Outputs maps output view names to view definitions
	Outputs map[string]View `yaml:"output,omitempty" json:"output,omitempty"`
}

// View kinds carried by a node port.
const (
	ViewDocument = "document"
	ViewBinary   = "binary"
)

// View is a named input or output port on a node.
type View struct {
	// ViewType is "document" or "binary"
	ViewType string `yaml:"view_type" json:"view_type"`
}

// Link is a directed connection between two node views.
type Link struct {
	// SrcID is the source node identifier
	SrcID string `yaml:"src_id" json:"src_id"`

	// SrcView is the source view name
	SrcView string `yaml:"src_view" json:"src_view"`

	// DstID is the destination node identifier
	DstID string `yaml:"dst_id" json:"dst_id"`

	// DstView is the destination view name
	DstView string `yaml:"dst_view" json:"dst_view"`
}
