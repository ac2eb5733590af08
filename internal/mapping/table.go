// Package mapping holds identifier-mapping tables between gene-identifier
// namespaces. A source identifier may map to zero, one, or many targets
// (paralogs, deprecated accessions, one-to-many splits); candidate order
// is fixed when the table is built and never changes afterwards.
package mapping

import "fmt"

// Pair is an ordered (source, target) namespace pair. Tables are keyed by
// the ordered pair: an accession-to-symbol table says nothing about the
// reverse direction.
type Pair struct {
	Source string
	Target string
}

func (p Pair) String() string { return p.Source + "->" + p.Target }

// Entry is one raw mapping row from an external source.
type Entry struct {
	SourceNamespace string
	SourceID        string
	TargetNamespace string
	TargetID        string
}

// UnsupportedNamespaceError reports a namespace pair with no loaded
// mapping table.
type UnsupportedNamespaceError struct {
	Pair Pair
}

func (e *UnsupportedNamespaceError) Error() string {
	return fmt.Sprintf("no mapping table for namespace pair %s", e.Pair)
}

// Table maps source identifiers of one namespace pair to their ordered
// target candidates. Immutable after construction.
type Table struct {
	pair       Pair
	candidates map[string][]string
}

// Pair returns the namespace pair the table translates.
func (t *Table) Pair() Pair { return t.pair }

// Len returns the number of distinct source identifiers.
func (t *Table) Len() int { return len(t.candidates) }

// Candidates returns every target candidate for id in table order, or an
// empty slice when the identifier has no mapping. Absence is a valid
// outcome, not an error: deprecated and unrecognized accessions are
// expected in real input.
func (t *Table) Candidates(id string) []string {
	c := t.candidates[id]
	out := make([]string, len(c))
	copy(out, c)
	return out
}

// Tables is the set of loaded mapping tables, keyed by namespace pair.
type Tables struct {
	byPair map[Pair]*Table
}

// NewTables groups raw entries into per-pair tables. Row order fixes the
// candidate order for ambiguous identifiers; exact duplicate rows collapse
// to the first occurrence.
func NewTables(entries []Entry) *Tables {
	byPair := make(map[Pair]*Table)
	seen := make(map[Entry]bool, len(entries))
	for _, e := range entries {
		if seen[e] {
			continue
		}
		seen[e] = true
		p := Pair{Source: e.SourceNamespace, Target: e.TargetNamespace}
		t, ok := byPair[p]
		if !ok {
			t = &Table{pair: p, candidates: make(map[string][]string)}
			byPair[p] = t
		}
		t.candidates[e.SourceID] = append(t.candidates[e.SourceID], e.TargetID)
	}
	return &Tables{byPair: byPair}
}

// Table returns the table for the ordered namespace pair, or
// UnsupportedNamespaceError if none was loaded.
func (ts *Tables) Table(source, target string) (*Table, error) {
	p := Pair{Source: source, Target: target}
	t, ok := ts.byPair[p]
	if !ok {
		return nil, &UnsupportedNamespaceError{Pair: p}
	}
	return t, nil
}

// Pairs returns the namespace pairs with a loaded table, in map order.
func (ts *Tables) Pairs() []Pair {
	out := make([]Pair, 0, len(ts.byPair))
	for p := range ts.byPair {
		out = append(out, p)
	}
	return out
}
