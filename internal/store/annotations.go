package store

import (
	"fmt"

	"github.com/ltao/grove/internal/annot"
)

// ReplaceAnnotations replaces all stored gene-to-term annotations inside a
// single transaction. Duplicate pairs in the input collapse via the
// table's uniqueness constraint.
func (s *Store) ReplaceAnnotations(annotations []annot.Annotation) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("replace annotations: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM annotations"); err != nil {
		return fmt.Errorf("replace annotations: clear: %w", err)
	}
	ins, err := tx.Prepare("INSERT OR IGNORE INTO annotations (term_id, gene_id) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("replace annotations: prepare: %w", err)
	}
	defer ins.Close()
	for _, a := range annotations {
		if _, err := ins.Exec(a.TermID, a.GeneID); err != nil {
			return fmt.Errorf("replace annotations: %s/%s: %w", a.TermID, a.GeneID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace annotations: commit: %w", err)
	}
	return nil
}

// LoadAnnotations reads every stored annotation pair.
func (s *Store) LoadAnnotations() ([]annot.Annotation, error) {
	rows, err := s.db.Query("SELECT term_id, gene_id FROM annotations ORDER BY term_id, gene_id")
	if err != nil {
		return nil, fmt.Errorf("load annotations: %w", err)
	}
	defer rows.Close()
	var out []annot.Annotation
	for rows.Next() {
		var a annot.Annotation
		if err := rows.Scan(&a.TermID, &a.GeneID); err != nil {
			return nil, fmt.Errorf("load annotations: scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load annotations: %w", err)
	}
	return out, nil
}

// ReplaceHousekeeping replaces the stored housekeeping gene set.
func (s *Store) ReplaceHousekeeping(genes []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("replace housekeeping: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM housekeeping_genes"); err != nil {
		return fmt.Errorf("replace housekeeping: clear: %w", err)
	}
	ins, err := tx.Prepare("INSERT OR IGNORE INTO housekeeping_genes (gene_id) VALUES (?)")
	if err != nil {
		return fmt.Errorf("replace housekeeping: prepare: %w", err)
	}
	defer ins.Close()
	for _, g := range genes {
		if _, err := ins.Exec(g); err != nil {
			return fmt.Errorf("replace housekeeping: %s: %w", g, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace housekeeping: commit: %w", err)
	}
	return nil
}

// LoadHousekeeping reads the stored housekeeping gene set, sorted.
func (s *Store) LoadHousekeeping() ([]string, error) {
	rows, err := s.db.Query("SELECT gene_id FROM housekeeping_genes ORDER BY gene_id")
	if err != nil {
		return nil, fmt.Errorf("load housekeeping: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("load housekeeping: scan: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load housekeeping: %w", err)
	}
	return out, nil
}
