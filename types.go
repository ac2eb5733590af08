package grove

import (
	"github.com/ltao/grove/internal/annot"
	"github.com/ltao/grove/internal/mapping"
	"github.com/ltao/grove/internal/ontology"
	"github.com/ltao/grove/internal/store"
)

// Public type aliases for internal types used in the query API. These are
// Go type aliases (=) — identical to the internal types at compile time.
// External consumers use these names; no conversion is needed.

type Store = store.Store
type Term = ontology.Term
type Graph = ontology.Graph
type Annotation = annot.Annotation
type AnnotationIndex = annot.Index
type MappingEntry = mapping.Entry
type NamespacePair = mapping.Pair

// Error taxonomy. Absence-of-result conditions never raise these; they
// are reserved for caller/data mismatches and invalid construction input.

type NotFoundError = ontology.NotFoundError
type MalformedGraphError = ontology.MalformedGraphError
type UnsupportedNamespaceError = mapping.UnsupportedNamespaceError
