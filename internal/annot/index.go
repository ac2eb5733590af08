// Package annot holds gene-to-term annotations: the direct associations
// between genes and ontology terms. Inheritance over the term DAG is not
// stored here; it is computed at query time by the searcher.
package annot

import "sort"

// Annotation is one direct gene-to-term association.
type Annotation struct {
	TermID string
	GeneID string
}

// Index maps a term identifier to the set of genes directly annotated to
// it. Built once by NewIndex and read-only thereafter. The index does not
// validate term identifiers against the ontology; that check belongs to
// the searcher, which owns the graph.
type Index struct {
	byTerm map[string][]string // sorted, deduplicated
}

// NewIndex builds an index from raw annotation pairs. Duplicate pairs
// collapse to one entry.
func NewIndex(annotations []Annotation) *Index {
	seen := make(map[Annotation]bool, len(annotations))
	byTerm := make(map[string][]string)
	for _, a := range annotations {
		if seen[a] {
			continue
		}
		seen[a] = true
		byTerm[a.TermID] = append(byTerm[a.TermID], a.GeneID)
	}
	for _, genes := range byTerm {
		sort.Strings(genes)
	}
	return &Index{byTerm: byTerm}
}

// GenesOf returns the genes directly annotated to the term, sorted. A term
// with no annotations yields an empty result; that is a valid outcome, not
// an error.
func (ix *Index) GenesOf(termID string) []string {
	genes := ix.byTerm[termID]
	out := make([]string, len(genes))
	copy(out, genes)
	return out
}

// Len returns the number of distinct annotated terms.
func (ix *Index) Len() int { return len(ix.byTerm) }
