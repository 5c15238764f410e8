package pipeline

// Endpoint is a link's pair of node references as discovered during
// extraction, before any integrity checking.
type Endpoint struct {
	// LinkID is the key of the link entry
	LinkID string

	// SrcID is the referenced source node identifier
	SrcID string

	// DstID is the referenced destination node identifier
	DstID string
}

// Extraction is the flattened view of a document that the validator
// consumes. Both the fast scanner and the strict loader produce one, so the
// rule logic never depends on which path built it.
type Extraction struct {
	// HasClassID indicates the discriminator key was present
	HasClassID bool

	// ClassIDValue is the discriminator value, if present
	ClassIDValue string

	// HasProperties indicates the property_map key was present
	HasProperties bool

	// HasSnapMap indicates the snap_map key was present
	HasSnapMap bool

	// HasLinkMap indicates the link_map key was present
	HasLinkMap bool

	// NodeIDs lists node identifiers in section order. Duplicates are
	// preserved so bookkeeping corruption can be detected downstream.
	NodeIDs []string

	// MalformedIDs lists keys found in the node section that do not match
	// the node identifier format. These are excluded from NodeIDs.
	MalformedIDs []string

	// Links lists link endpoints in section order
	Links []Endpoint
}

// NodeSet returns the distinct node identifiers discovered in the node
// section.
func (e *Extraction) NodeSet() map[string]struct{} {
	set := make(map[string]struct{}, len(e.NodeIDs))
	for _, id := range e.NodeIDs {
		set[id] = struct{}{}
	}
	return set
}

// NodeCount returns the number of distinct node identifiers.
func (e *Extraction) NodeCount() int {
	return len(e.NodeSet())
}

// LinkCount returns the number of discovered links.
func (e *Extraction) LinkCount() int {
	return len(e.Links)
}
