// Package catalog looks node types up against the platform's schema
// catalog. This is schema lookup, not structural validation: it answers
// whether a node's type discriminator is known and whether its declared
// version is current.
package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a class id has no catalog entry.
var ErrNotFound = errors.New("node type not found in catalog")

// NodeType describes a catalog entry for a node class.
type NodeType struct {
	// ClassID is the node type discriminator
	ClassID string `json:"class_id"`

	// Version is the current version published in the catalog
	Version int `json:"version"`

	// Category groups related node types
	Category string `json:"category,omitempty"`

	// Description is the catalog's summary of the node type
	Description string `json:"description,omitempty"`
}

// Catalog resolves node types.
type Catalog interface {
	// Lookup returns the catalog entry for a class id, or ErrNotFound
	Lookup(ctx context.Context, classID string) (*NodeType, error)

	// Search returns entries whose class id or description contains the token
	Search(ctx context.Context, token string) ([]NodeType, error)
}

// Cache stores catalog entries with a time-to-live.
type Cache interface {
	// Get returns the cached entry for a class id, if present and fresh
	Get(ctx context.Context, classID string) (*NodeType, bool, error)

	// Put stores an entry until its TTL expires
	Put(ctx context.Context, entry *NodeType) error

	// Search returns cached entries whose class id or description
	// contains the token
	Search(ctx context.Context, token string) ([]NodeType, error)
}
