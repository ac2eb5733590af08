package store

import (
	"fmt"

	"github.com/ltao/grove/internal/ontology"
)

// ReplaceTerms replaces the stored ontology with the given terms inside a
// single transaction. Synonym and parent row order follows slice order so
// a reload reproduces the original term exactly.
func (s *Store) ReplaceTerms(terms []ontology.Term) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("replace terms: begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"term_synonyms", "term_parents", "terms"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("replace terms: clear %s: %w", table, err)
		}
	}

	insTerm, err := tx.Prepare("INSERT INTO terms (id, name, namespace) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("replace terms: prepare: %w", err)
	}
	defer insTerm.Close()
	insSyn, err := tx.Prepare("INSERT INTO term_synonyms (term_id, synonym) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("replace terms: prepare: %w", err)
	}
	defer insSyn.Close()
	insParent, err := tx.Prepare("INSERT INTO term_parents (term_id, parent_id) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("replace terms: prepare: %w", err)
	}
	defer insParent.Close()

	for _, t := range terms {
		if _, err := insTerm.Exec(t.ID, t.Name, t.Namespace); err != nil {
			return fmt.Errorf("replace terms: term %s: %w", t.ID, err)
		}
		for _, syn := range t.Synonyms {
			if _, err := insSyn.Exec(t.ID, syn); err != nil {
				return fmt.Errorf("replace terms: synonym of %s: %w", t.ID, err)
			}
		}
		for _, p := range t.Parents {
			if _, err := insParent.Exec(t.ID, p); err != nil {
				return fmt.Errorf("replace terms: parent of %s: %w", t.ID, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace terms: commit: %w", err)
	}
	return nil
}

// LoadTerms reads every stored term with its synonyms and parents.
func (s *Store) LoadTerms() ([]ontology.Term, error) {
	rows, err := s.db.Query("SELECT id, name, namespace FROM terms ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("load terms: %w", err)
	}
	defer rows.Close()

	var terms []ontology.Term
	index := make(map[string]int)
	for rows.Next() {
		var t ontology.Term
		if err := rows.Scan(&t.ID, &t.Name, &t.Namespace); err != nil {
			return nil, fmt.Errorf("load terms: scan: %w", err)
		}
		index[t.ID] = len(terms)
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load terms: %w", err)
	}

	if err := s.fillTermLists(index, "term_synonyms", "synonym", func(i int, v string) {
		terms[i].Synonyms = append(terms[i].Synonyms, v)
	}); err != nil {
		return nil, err
	}
	if err := s.fillTermLists(index, "term_parents", "parent_id", func(i int, v string) {
		terms[i].Parents = append(terms[i].Parents, v)
	}); err != nil {
		return nil, err
	}
	return terms, nil
}

// fillTermLists streams one of the per-term list tables in insertion order
// and appends each value to its owning term.
func (s *Store) fillTermLists(index map[string]int, table, column string, add func(int, string)) error {
	rows, err := s.db.Query(fmt.Sprintf("SELECT term_id, %s FROM %s ORDER BY rowid", column, table))
	if err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var termID, value string
		if err := rows.Scan(&termID, &value); err != nil {
			return fmt.Errorf("load %s: scan: %w", table, err)
		}
		if i, ok := index[termID]; ok {
			add(i, value)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}
	return nil
}
