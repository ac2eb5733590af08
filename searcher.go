package grove

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ltao/grove/internal/annot"
	"github.com/ltao/grove/internal/ontology"
)

// Searcher composes the ontology graph, the annotation index, and the
// housekeeping reference set to answer keyword-based term search and
// gene-set retrieval. All inputs are injected at construction and never
// mutated afterwards, so a Searcher is safe for concurrent use.
type Searcher struct {
	graph        *ontology.Graph
	index        *annot.Index
	housekeeping []string // sorted, deduplicated
	docs         []searchDoc
}

// searchDoc is a term's case-folded searchable metadata, precomputed once
// so every KeywordSearch call avoids re-folding the whole vocabulary.
type searchDoc struct {
	id    string
	texts []string // folded canonical name, then folded synonyms
}

// NewSearcher builds a Searcher over an already-validated graph and index.
// The housekeeping set is consumed as an opaque precomputed gene list.
func NewSearcher(graph *ontology.Graph, index *annot.Index, housekeeping []string) *Searcher {
	terms := graph.Terms()
	docs := make([]searchDoc, 0, len(terms))
	for _, t := range terms {
		texts := make([]string, 0, 1+len(t.Synonyms))
		texts = append(texts, foldKeyword(t.Name))
		for _, syn := range t.Synonyms {
			texts = append(texts, foldKeyword(syn))
		}
		docs = append(docs, searchDoc{id: t.ID, texts: texts})
	}

	hk := append([]string(nil), housekeeping...)
	sort.Strings(hk)
	hk = dedupSorted(hk)

	return &Searcher{graph: graph, index: index, housekeeping: hk, docs: docs}
}

// Graph returns the underlying ontology graph.
func (s *Searcher) Graph() *ontology.Graph { return s.graph }

// KeywordSearch returns the identifiers of terms whose canonical name or
// any synonym matches a keyword, case-folded and whitespace-trimmed. With
// exact=true a keyword must equal the text; with exact=false substring
// containment suffices and every match additionally contributes its full
// descendant closure, so a broad query captures all more-specific
// sub-concepts. The result is deduplicated and sorted. No match is a
// valid empty result, as is an empty keyword list.
func (s *Searcher) KeywordSearch(keywords []string, exact bool) []string {
	folded := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if f := foldKeyword(k); f != "" {
			folded = append(folded, f)
		}
	}
	if len(folded) == 0 {
		return []string{}
	}

	var direct []string
	for _, doc := range s.docs {
		if doc.matches(folded, exact) {
			direct = append(direct, doc.id)
		}
	}
	if exact {
		return sortedSet(direct)
	}

	all := make(map[string]bool, len(direct))
	for _, id := range direct {
		all[id] = true
		// The ID came from the graph's own term list, so the lookup
		// cannot fail.
		desc, _ := s.graph.Descendants(id)
		for _, d := range desc {
			all[d] = true
		}
	}
	return sortedKeys(all)
}

func (d searchDoc) matches(folded []string, exact bool) bool {
	for _, text := range d.texts {
		for _, k := range folded {
			if exact {
				if text == k {
					return true
				}
			} else if strings.Contains(text, k) {
				return true
			}
		}
	}
	return false
}

// Genes returns every gene directly annotated to any of the given terms
// or to any descendant of them: annotation to a specific term implies
// annotation to every broader ancestor concept. All identifiers are
// validated against the graph up front; unknown ones fail with a
// NotFoundError listing each offender. No annotated gene is a valid
// empty result.
func (s *Searcher) Genes(termIDs []string) ([]string, error) {
	var missing []string
	for _, id := range termIDs {
		if !s.graph.Has(id) {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &ontology.NotFoundError{IDs: sortedSet(missing)}
	}

	genes := make(map[string]bool)
	for _, id := range termIDs {
		s.collectGenes(id, genes)
		desc, err := s.graph.Descendants(id)
		if err != nil {
			return nil, err
		}
		for _, d := range desc {
			s.collectGenes(d, genes)
		}
	}
	return sortedKeys(genes), nil
}

func (s *Searcher) collectGenes(termID string, into map[string]bool) {
	for _, g := range s.index.GenesOf(termID) {
		into[g] = true
	}
}

// HousekeepingGenes returns the precomputed set of ubiquitously expressed
// genes, sorted. A pure accessor: the set is supplied externally and
// passed through unchanged.
func (s *Searcher) HousekeepingGenes() []string {
	out := make([]string, len(s.housekeeping))
	copy(out, s.housekeeping)
	return out
}

// foldKeyword trims whitespace and applies Unicode case folding, the
// normalization used on both keywords and term metadata.
func foldKeyword(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedSet(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return dedupSorted(out)
}

func dedupSorted(sorted []string) []string {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	if out == nil {
		return []string{}
	}
	return out
}
