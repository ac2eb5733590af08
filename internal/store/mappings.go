package store

import (
	"fmt"

	"github.com/ltao/grove/internal/mapping"
)

// ReplaceMappings replaces all stored identifier mappings inside a single
// transaction. The ordinal column records each entry's position within
// its (namespace pair, source identifier) group, so candidate order
// survives the round trip through the database.
func (s *Store) ReplaceMappings(entries []mapping.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("replace mappings: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM identifier_mappings"); err != nil {
		return fmt.Errorf("replace mappings: clear: %w", err)
	}
	ins, err := tx.Prepare(
		"INSERT INTO identifier_mappings (source_ns, target_ns, source_id, target_id, ordinal) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("replace mappings: prepare: %w", err)
	}
	defer ins.Close()

	type group struct {
		pair     mapping.Pair
		sourceID string
	}
	ordinals := make(map[group]int)
	for _, e := range entries {
		g := group{pair: mapping.Pair{Source: e.SourceNamespace, Target: e.TargetNamespace}, sourceID: e.SourceID}
		ord := ordinals[g]
		ordinals[g] = ord + 1
		if _, err := ins.Exec(e.SourceNamespace, e.TargetNamespace, e.SourceID, e.TargetID, ord); err != nil {
			return fmt.Errorf("replace mappings: %s %s: %w", g.pair, e.SourceID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace mappings: commit: %w", err)
	}
	return nil
}

// LoadMappings reads every stored mapping entry in candidate order.
func (s *Store) LoadMappings() ([]mapping.Entry, error) {
	rows, err := s.db.Query(
		"SELECT source_ns, target_ns, source_id, target_id FROM identifier_mappings ORDER BY source_ns, target_ns, source_id, ordinal",
	)
	if err != nil {
		return nil, fmt.Errorf("load mappings: %w", err)
	}
	defer rows.Close()
	var out []mapping.Entry
	for rows.Next() {
		var e mapping.Entry
		if err := rows.Scan(&e.SourceNamespace, &e.TargetNamespace, &e.SourceID, &e.TargetID); err != nil {
			return nil, fmt.Errorf("load mappings: scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load mappings: %w", err)
	}
	return out, nil
}
