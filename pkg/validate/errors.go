// Package validate evaluates the structural invariants of a pipeline
// document. One rule module serves both validation paths: the fast path
// feeds it a scanner extraction and stops at the first failure, the
// comprehensive path feeds it a full-parse extraction and accumulates
// everything.
package validate

import "fmt"

// Kind names a distinct validation failure. Every check reports its own
// kind; there is no generic "validation failed".
type Kind string

// Failure kinds.
const (
	KindSyntaxError             Kind = "SyntaxError"
	KindMissingRequiredField    Kind = "MissingRequiredField"
	KindNoNodesFound            Kind = "NoNodesFound"
	KindLinkCountMismatch       Kind = "LinkCountMismatch"
	KindIdentifierCountMismatch Kind = "IdentifierCountMismatch"
	KindDanglingReference       Kind = "DanglingReference"
	KindUnknownNodeType         Kind = "UnknownNodeType"
)

// Category buckets failures for the comprehensive report.
type Category string

// Report categories.
const (
	CategorySyntax      Category = "syntax"
	CategoryStructure   Category = "structure"
	CategoryReferential Category = "referential"
)

// Error is a single validation failure.
type Error struct {
	// Kind of the failure
	Kind Kind

	// Category the failure belongs to
	Category Category

	// Message is the human-readable diagnostic
	Message string

	// Expected and Found carry the counts for mismatch kinds
	Expected int
	Found    int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Warning is an advisory finding that never affects the validation outcome.
type Warning struct {
	// Message is the advisory text
	Message string
}

// NewSyntaxError wraps a parse failure.
func NewSyntaxError(err error) *Error {
	return &Error{
		Kind:     KindSyntaxError,
		Category: CategorySyntax,
		Message:  err.Error(),
	}
}

// NewMissingRequiredField reports an absent mandatory top-level key.
func NewMissingRequiredField(field string) *Error {
	return &Error{
		Kind:     KindMissingRequiredField,
		Category: CategoryStructure,
		Message:  fmt.Sprintf("required field '%s' is missing", field),
	}
}

// NewBadDiscriminator reports a discriminator with the wrong value.
func NewBadDiscriminator(got, want string) *Error {
	return &Error{
		Kind:     KindMissingRequiredField,
		Category: CategoryStructure,
		Message:  fmt.Sprintf("class_id is '%s', expected '%s'", got, want),
	}
}

// NewNoNodesFound reports an empty node section.
func NewNoNodesFound() *Error {
	return &Error{
		Kind:     KindNoNodesFound,
		Category: CategoryStructure,
		Message:  "pipeline must contain at least one node",
	}
}

// NewLinkCountMismatch reports a link count that does not satisfy the
// node-count relationship.
func NewLinkCountMismatch(expected, found int) *Error {
	return &Error{
		Kind:     KindLinkCountMismatch,
		Category: CategoryStructure,
		Message:  fmt.Sprintf("expected %d links for the node count, found %d", expected, found),
		Expected: expected,
		Found:    found,
	}
}

// NewIdentifierCountMismatch reports disagreement between raw identifier
// occurrences and distinct node entries, which signals duplicate-key or
// parse corruption.
func NewIdentifierCountMismatch(expected, found int) *Error {
	return &Error{
		Kind:     KindIdentifierCountMismatch,
		Category: CategoryStructure,
		Message:  fmt.Sprintf("expected %d node identifiers, found %d", expected, found),
		Expected: expected,
		Found:    found,
	}
}

// NewDanglingReference reports a link endpoint that does not resolve to a
// declared node.
func NewDanglingReference(linkID, field, nodeID string) *Error {
	return &Error{
		Kind:     KindDanglingReference,
		Category: CategoryReferential,
		Message:  fmt.Sprintf("link '%s' %s references unknown node '%s'", linkID, field, nodeID),
	}
}

// NewUnknownNodeType reports a node whose type is absent from the catalog.
func NewUnknownNodeType(nodeID, classID string) *Error {
	return &Error{
		Kind:     KindUnknownNodeType,
		Category: CategoryReferential,
		Message:  fmt.Sprintf("node '%s' has unknown type '%s'", nodeID, classID),
	}
}
