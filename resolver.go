package grove

import (
	"github.com/ltao/grove/internal/mapping"
)

// Unresolved is the sentinel ConvertList places in an output slot when an
// identifier has no mapping in the target namespace. Batch conversion is
// total: it never fabricates a guess and never aborts on a miss.
const Unresolved = "unresolved"

// Resolver converts gene identifiers between two fixed namespaces using
// one immutable mapping table. Construction fails when no table exists
// for the ordered namespace pair; after that every conversion is a pure
// lookup, safe for concurrent use.
type Resolver struct {
	table *mapping.Table
}

// NewResolver selects the table for the ordered (source, target) pair.
// Fails with UnsupportedNamespaceError if that pair was not loaded.
func NewResolver(tables *mapping.Tables, source, target string) (*Resolver, error) {
	t, err := tables.Table(source, target)
	if err != nil {
		return nil, err
	}
	return &Resolver{table: t}, nil
}

// Source returns the namespace identifiers are converted from.
func (r *Resolver) Source() string { return r.table.Pair().Source }

// Target returns the namespace identifiers are converted to.
func (r *Resolver) Target() string { return r.table.Pair().Target }

// Resolution is the tagged outcome of resolving one identifier: zero
// candidates (no mapping), one (unambiguous), or several (paralogs,
// one-to-many splits) in the table's deterministic order. Callers choose
// strict or lenient handling instead of silently taking index zero.
type Resolution struct {
	Query      string
	Candidates []string
}

// Resolved reports whether at least one candidate exists.
func (res Resolution) Resolved() bool { return len(res.Candidates) > 0 }

// Ambiguous reports whether more than one candidate exists.
func (res Resolution) Ambiguous() bool { return len(res.Candidates) > 1 }

// First returns the first candidate in table order, or Unresolved when
// there is none. This is the policy ConvertList applies per slot.
func (res Resolution) First() string {
	if len(res.Candidates) == 0 {
		return Unresolved
	}
	return res.Candidates[0]
}

// Resolve returns the tagged resolution for one identifier. An unknown
// identifier yields zero candidates, not an error: deprecated and
// unrecognized accessions are expected in real input.
func (r *Resolver) Resolve(id string) Resolution {
	return Resolution{Query: id, Candidates: r.table.Candidates(id)}
}

// ConvertOne returns every target candidate for id in the table's
// deterministic order, fixed at load time. Empty when the identifier has
// no mapping; candidates are never silently dropped.
func (r *Resolver) ConvertOne(id string) []string {
	return r.table.Candidates(id)
}

// ConvertList converts a batch, preserving input order and length: one
// output per input. Ambiguity resolves to the first candidate in table
// order; a miss yields the Unresolved sentinel. Callers needing all
// candidates use ConvertOne or Resolve directly.
func (r *Resolver) ConvertList(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = r.Resolve(id).First()
	}
	return out
}
