package ontology

// Term is a single controlled-vocabulary term: a node in the ontology DAG.
type Term struct {
	ID        string
	Name      string
	Namespace string
	Synonyms  []string
	Parents   []string // is_a parent term IDs
}
