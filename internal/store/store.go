// Package store is the SQLite data access layer for grove's prepared data:
// ontology terms, gene annotations, the housekeeping reference set, and
// identifier-mapping tables. The ingest phase writes it once; the query
// phase loads it whole into immutable in-memory structures.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the SQLite database holding grove's six tables.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database at dbPath with WAL mode enabled.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use in transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Migrate creates all tables and indexes. Idempotent.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(schemaDDL)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS terms (
  id         TEXT PRIMARY KEY,
  name       TEXT NOT NULL,
  namespace  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS term_synonyms (
  term_id    TEXT NOT NULL REFERENCES terms(id) ON DELETE CASCADE,
  synonym    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS term_parents (
  term_id    TEXT NOT NULL REFERENCES terms(id) ON DELETE CASCADE,
  parent_id  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS annotations (
  term_id    TEXT NOT NULL,
  gene_id    TEXT NOT NULL,
  UNIQUE (term_id, gene_id)
);

CREATE TABLE IF NOT EXISTS housekeeping_genes (
  gene_id    TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS identifier_mappings (
  source_ns  TEXT NOT NULL,
  target_ns  TEXT NOT NULL,
  source_id  TEXT NOT NULL,
  target_id  TEXT NOT NULL,
  ordinal    INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_term_synonyms_term ON term_synonyms(term_id);
CREATE INDEX IF NOT EXISTS idx_term_parents_term ON term_parents(term_id);
CREATE INDEX IF NOT EXISTS idx_annotations_term ON annotations(term_id);
CREATE INDEX IF NOT EXISTS idx_mappings_lookup
  ON identifier_mappings(source_ns, target_ns, source_id, ordinal);
`
