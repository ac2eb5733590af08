package ontology

import (
	"fmt"
	"sort"
)

// Graph is the immutable in-memory ontology DAG. It owns all terms, keyed
// by identifier, plus a child adjacency index derived from the parent
// links. Built once by NewGraph and read-only thereafter, so concurrent
// readers need no locking.
type Graph struct {
	terms    map[string]*Term
	children map[string][]string // parent ID -> direct child IDs, sorted
	ordered  []*Term             // all terms, sorted by ID
}

// NewGraph validates the term set and builds the graph. It fails with
// MalformedGraphError on a duplicate identifier, a parent reference to a
// nonexistent term, or a cycle in the parent relation.
func NewGraph(terms []Term) (*Graph, error) {
	g := &Graph{
		terms:    make(map[string]*Term, len(terms)),
		children: make(map[string][]string),
		ordered:  make([]*Term, 0, len(terms)),
	}

	for i := range terms {
		t := &terms[i]
		if t.ID == "" {
			return nil, &MalformedGraphError{Reason: "term with empty identifier"}
		}
		if _, dup := g.terms[t.ID]; dup {
			return nil, &MalformedGraphError{Reason: fmt.Sprintf("duplicate term identifier %s", t.ID)}
		}
		g.terms[t.ID] = t
		g.ordered = append(g.ordered, t)
	}
	sort.Slice(g.ordered, func(i, j int) bool { return g.ordered[i].ID < g.ordered[j].ID })

	for _, t := range g.ordered {
		for _, p := range t.Parents {
			if _, ok := g.terms[p]; !ok {
				return nil, &MalformedGraphError{
					Reason: fmt.Sprintf("term %s references unknown parent %s", t.ID, p),
				}
			}
			g.children[p] = append(g.children[p], t.ID)
		}
	}
	for _, kids := range g.children {
		sort.Strings(kids)
	}

	if cyclic := findCycleMember(g); cyclic != "" {
		return nil, &MalformedGraphError{
			Reason: fmt.Sprintf("cycle in parent relation involving %s", cyclic),
		}
	}
	return g, nil
}

// findCycleMember runs Kahn's algorithm over the parent relation and
// returns the identifier of some term on a cycle, or "" if the graph is
// acyclic. Iterative by construction, so graph depth never touches the
// call stack.
func findCycleMember(g *Graph) string {
	remaining := make(map[string]int, len(g.terms)) // unprocessed parent count
	queue := make([]string, 0, len(g.terms))
	for id, t := range g.terms {
		remaining[id] = len(t.Parents)
		if len(t.Parents) == 0 {
			queue = append(queue, id)
		}
	}

	processed := 0
	for len(queue) > 0 {
		id := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		processed++
		for _, child := range g.children[id] {
			remaining[child]--
			if remaining[child] == 0 {
				queue = append(queue, child)
			}
		}
	}
	if processed == len(g.terms) {
		return ""
	}
	// Any term with parents still unprocessed sits on or below a cycle;
	// report the lexicographically smallest for a stable message.
	var member string
	for id, n := range remaining {
		if n > 0 && (member == "" || id < member) {
			member = id
		}
	}
	return member
}

// Len returns the number of terms in the graph.
func (g *Graph) Len() int { return len(g.ordered) }

// Has reports whether a term with the given identifier exists.
func (g *Graph) Has(id string) bool {
	_, ok := g.terms[id]
	return ok
}

// TermByID returns the term with the given identifier, or NotFoundError.
func (g *Graph) TermByID(id string) (*Term, error) {
	t, ok := g.terms[id]
	if !ok {
		return nil, &NotFoundError{IDs: []string{id}}
	}
	return t, nil
}

// Terms returns all terms sorted by identifier. The returned slice is
// shared; callers must not modify it.
func (g *Graph) Terms() []*Term { return g.ordered }

// Children returns the direct children of id, sorted. Empty for a leaf.
func (g *Graph) Children(id string) ([]string, error) {
	if !g.Has(id) {
		return nil, &NotFoundError{IDs: []string{id}}
	}
	kids := g.children[id]
	out := make([]string, len(kids))
	copy(out, kids)
	return out, nil
}

// Descendants returns the full transitive closure of children of id,
// sorted, excluding id itself. The traversal is an iterative BFS with a
// visited set: in a DAG the same descendant is reachable through several
// parents, and each reachable term must be visited exactly once.
func (g *Graph) Descendants(id string) ([]string, error) {
	if !g.Has(id) {
		return nil, &NotFoundError{IDs: []string{id}}
	}
	visited := make(map[string]bool)
	queue := append([]string(nil), g.children[id]...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		queue = append(queue, g.children[cur]...)
	}
	out := make([]string, 0, len(visited))
	for d := range visited {
		out = append(out, d)
	}
	sort.Strings(out)
	return out, nil
}
