package validate

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/gatewerk/pipecheck/pkg/catalog"
	"github.com/gatewerk/pipecheck/pkg/pipeline"
)

// CheckCatalog verifies every node's type against the schema catalog. An
// unknown type is fatal; a version behind the catalog's current version is
// only advisory. Lookup transport failures are reported as warnings so an
// unreachable catalog never blocks validation.
func CheckCatalog(ctx context.Context, doc *pipeline.Document, cat catalog.Catalog, sink Sink) {
	ids := make([]string, 0, len(doc.Snaps))
	for id := range doc.Snaps {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		node := doc.Snaps[id]

		entry, err := cat.Lookup(ctx, node.ClassID)
		if errors.Is(err, catalog.ErrNotFound) {
			if !sink.Fail(NewUnknownNodeType(id, node.ClassID)) {
				return
			}
			continue
		}
		if err != nil {
			sink.Warn(Warning{Message: fmt.Sprintf("catalog lookup for '%s' failed: %v", node.ClassID, err)})
			continue
		}

		if node.Version != entry.Version {
			sink.Warn(Warning{Message: fmt.Sprintf(
				"node '%s' declares version %d of '%s', catalog has %d", id, node.Version, node.ClassID, entry.Version)})
		}
	}
}
