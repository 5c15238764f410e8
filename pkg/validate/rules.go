package validate

import (
	"fmt"

	"github.com/gatewerk/pipecheck/pkg/loader"
	"github.com/gatewerk/pipecheck/pkg/pipeline"
	"github.com/gatewerk/pipecheck/pkg/scanner"
)

// Run evaluates the structural invariants against an extraction in fixed
// priority order: required fields, node count, link count, identifier
// bookkeeping, endpoint referential integrity. Cheap and fundamental checks
// come first so the fast path fails on the most actionable diagnostic.
func Run(ex *pipeline.Extraction, sink Sink) {
	if !checkRequiredFields(ex, sink) {
		return
	}
	if !checkNodeCounts(ex, sink) {
		return
	}
	checkReferences(ex, sink)
}

func checkRequiredFields(ex *pipeline.Extraction, sink Sink) bool {
	if !ex.HasClassID {
		if !sink.Fail(NewMissingRequiredField(pipeline.KeyClassID)) {
			return false
		}
	} else if ex.ClassIDValue != pipeline.ClassID {
		if !sink.Fail(NewBadDiscriminator(ex.ClassIDValue, pipeline.ClassID)) {
			return false
		}
	}

	if !ex.HasProperties {
		if !sink.Fail(NewMissingRequiredField(pipeline.KeyProperty)) {
			return false
		}
	}
	if !ex.HasSnapMap {
		if !sink.Fail(NewMissingRequiredField(pipeline.KeySnapMap)) {
			return false
		}
	}
	if !ex.HasLinkMap {
		if !sink.Fail(NewMissingRequiredField(pipeline.KeyLinkMap)) {
			return false
		}
	}
	return true
}

func checkNodeCounts(ex *pipeline.Extraction, sink Sink) bool {
	if !ex.HasSnapMap {
		// Absence was already reported; count checks would only add noise.
		return true
	}

	nodes := ex.NodeCount()
	links := ex.LinkCount()

	switch {
	case nodes == 0:
		if !sink.Fail(NewNoNodesFound()) {
			return false
		}
	case nodes == 1:
		if links != 0 {
			sink.Warn(Warning{Message: fmt.Sprintf("single-node pipeline has %d links", links)})
		}
	default:
		if expected := nodes - 1; links != expected {
			if !sink.Fail(NewLinkCountMismatch(expected, links)) {
				return false
			}
		}
	}

	// Raw identifier occurrences must agree with the distinct entry count,
	// otherwise the document was corrupted by duplicated keys somewhere
	// between authoring and parsing.
	if raw := len(ex.NodeIDs); raw != nodes {
		if !sink.Fail(NewIdentifierCountMismatch(nodes, raw)) {
			return false
		}
	}

	for _, id := range ex.MalformedIDs {
		sink.Warn(Warning{Message: fmt.Sprintf("node identifier '%s' does not match the expected format", id)})
	}
	return true
}

func checkReferences(ex *pipeline.Extraction, sink Sink) {
	known := ex.NodeSet()
	for _, link := range ex.Links {
		if _, ok := known[link.SrcID]; !ok {
			if !sink.Fail(NewDanglingReference(link.LinkID, "src_id", link.SrcID)) {
				return
			}
		}
		if _, ok := known[link.DstID]; !ok {
			if !sink.Fail(NewDanglingReference(link.LinkID, "dst_id", link.DstID)) {
				return
			}
		}
	}
}

// Fast validates a serialized document with the single-pass scanner and
// first-failure semantics. It returns nil on success or the first fatal
// finding as an *Error.
func Fast(data []byte) error {
	ex, err := scanner.Scan(data)
	if err != nil {
		return NewSyntaxError(err)
	}

	sink := &FirstFailure{}
	Run(ex, sink)
	return sink.Err()
}

// Strict validates a serialized document with the full parser and
// accumulate-all semantics. The returned accumulator always reflects every
// check that could be run.
func Strict(data []byte) *Accumulator {
	acc := &Accumulator{}
	ex, err := loader.Extract(data)
	if err != nil {
		acc.Fail(NewSyntaxError(err))
		return acc
	}

	Run(ex, acc)
	return acc
}
