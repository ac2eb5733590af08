package ontology

import (
	"fmt"
	"strings"
)

// NotFoundError reports term identifiers that are absent from the graph.
// It always carries every offending identifier from the call that raised
// it, so callers can report the exact mismatch.
type NotFoundError struct {
	IDs []string
}

func (e *NotFoundError) Error() string {
	if len(e.IDs) == 1 {
		return fmt.Sprintf("term not found: %s", e.IDs[0])
	}
	return fmt.Sprintf("terms not found: %s", strings.Join(e.IDs, ", "))
}

// MalformedGraphError reports a structural defect detected while building
// a Graph: a duplicate term identifier, a parent reference to a term that
// does not exist, or a cycle in the parent relation. A graph that fails
// validation is never returned.
type MalformedGraphError struct {
	Reason string
}

func (e *MalformedGraphError) Error() string {
	return "malformed ontology graph: " + e.Reason
}
