// Package grove retrieves genes by biological concept and translates gene
// identifiers between naming schemes. It traverses a controlled-vocabulary
// ontology (a multi-parent DAG of terms), expands keyword matches to their
// full descendant closure, aggregates gene-to-term annotations with
// inheritance semantics, and resolves ambiguous many-to-many identifier
// mappings deterministically.
//
// # Pipeline
//
// Grove operates in two phases:
//
//  1. Ingest: parse an OBO ontology, a GAF annotation file, a housekeeping
//     gene list, and identifier-mapping tables, and write them to SQLite.
//
//  2. Query: load the SQLite database into immutable in-memory structures
//     and answer searches. Everything is read-only after load, so
//     concurrent readers need no locking.
//
// # Usage
//
// Open an Engine, ingest data sources once, then query:
//
//	e, err := grove.Open("grove.db")
//	if err != nil { ... }
//	defer e.Close()
//
//	err = e.Ingest(ctx, grove.Sources{
//	    Ontology:     "go-basic.obo.gz",
//	    Annotations:  "goa_human.gaf.gz",
//	    Housekeeping: "housekeeping.txt",
//	    Mappings:     []string{"accession_to_symbol.tsv"},
//	})
//
//	s, err := e.Searcher()
//	terms := s.KeywordSearch([]string{"immune"}, false)
//	genes, err := s.Genes(terms)
//
//	r, err := e.Resolver("ensembl_gene_id", "symbol")
//	symbols := r.ConvertList(genes)
//
// # Query API
//
// [Searcher] answers concept queries over the loaded ontology:
//
//   - [Searcher.KeywordSearch] — terms whose name or synonyms match a
//     keyword; non-exact matches expand to the descendant closure.
//   - [Searcher.Genes] — genes annotated to the given terms or to any of
//     their descendants (annotation to a narrow term implies annotation to
//     every broader ancestor concept).
//   - [Searcher.HousekeepingGenes] — the precomputed reference set of
//     ubiquitously expressed genes.
//
// [Resolver] translates identifiers between two fixed namespaces:
//
//   - [Resolver.Resolve] — all candidates for one identifier, tagged.
//   - [Resolver.ConvertOne] — ordered candidate slice for one identifier.
//   - [Resolver.ConvertList] — total batch conversion: first candidate on
//     ambiguity, the [Unresolved] sentinel on a miss, one output per input.
//
// Both are pure query surfaces: absence of a match, an annotation, or a
// mapping is a valid empty result, never an error. Errors are reserved for
// caller/data mismatches ([NotFoundError]), structurally invalid ontologies
// ([MalformedGraphError]), and unconfigured namespace pairs
// ([UnsupportedNamespaceError]).
package grove
