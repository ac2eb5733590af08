package grove

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ltao/grove/internal/annot"
	"github.com/ltao/grove/internal/fileio"
	"github.com/ltao/grove/internal/mapping"
	"github.com/ltao/grove/internal/ontology"
	"github.com/ltao/grove/internal/store"
)

// Engine owns the SQLite database behind grove's two phases: Ingest
// parses external data sources and writes them to the database, Searcher
// and Resolver load the stored data into immutable in-memory structures
// for querying.
type Engine struct {
	store *store.Store
}

// Open creates an Engine backed by a SQLite database at dbPath, creating
// the schema when absent.
func Open(dbPath string) (*Engine, error) {
	s, err := store.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("grove: create store: %w", err)
	}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("grove: migrate: %w", err)
	}
	return &Engine{store: s}, nil
}

// Close releases the Engine's database resources.
func (e *Engine) Close() error {
	return e.store.Close()
}

// Store returns the underlying Store for direct access.
func (e *Engine) Store() *store.Store {
	return e.store
}

// Sources names the data files for one ingest run. Ontology and
// Annotations may be gzipped (.gz). Empty fields are skipped, so a store
// can be populated incrementally.
type Sources struct {
	Ontology     string   // OBO-format ontology
	Annotations  string   // GAF 2.x annotation file
	Housekeeping string   // one gene identifier per line
	Mappings     []string // two-column TSVs; the header row names the namespaces
}

// Ingest parses the given sources and replaces the corresponding tables
// in the database. The independent sources are parsed concurrently; the
// ontology is validated (cycle and parent checks) before anything is
// written, so a malformed graph never reaches the store.
func (e *Engine) Ingest(ctx context.Context, src Sources) error {
	var (
		terms        []ontology.Term
		annotations  []annot.Annotation
		housekeeping []string
		entries      []mapping.Entry
	)

	var g errgroup.Group
	if src.Ontology != "" {
		g.Go(func() error {
			var err error
			terms, err = parseOntologyFile(src.Ontology)
			return err
		})
	}
	if src.Annotations != "" {
		g.Go(func() error {
			var err error
			annotations, err = parseAnnotationFile(src.Annotations)
			return err
		})
	}
	if src.Housekeeping != "" {
		g.Go(func() error {
			var err error
			housekeeping, err = parseGeneListFile(src.Housekeeping)
			return err
		})
	}
	perFile := make([][]mapping.Entry, len(src.Mappings))
	for i, path := range src.Mappings {
		i, path := i, path
		g.Go(func() error {
			parsed, err := parseMappingFile(path)
			if err != nil {
				return err
			}
			perFile[i] = parsed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("grove: ingest: %w", err)
	}
	for _, parsed := range perFile {
		entries = append(entries, parsed...)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("grove: ingest: %w", err)
	}

	if src.Ontology != "" {
		// Validate before writing; the engine must not serve queries
		// over a graph it could not validate.
		if _, err := ontology.NewGraph(terms); err != nil {
			return fmt.Errorf("grove: ingest %s: %w", src.Ontology, err)
		}
		if err := e.store.ReplaceTerms(terms); err != nil {
			return fmt.Errorf("grove: ingest: %w", err)
		}
	}
	if src.Annotations != "" {
		if err := e.store.ReplaceAnnotations(annotations); err != nil {
			return fmt.Errorf("grove: ingest: %w", err)
		}
	}
	if src.Housekeeping != "" {
		if err := e.store.ReplaceHousekeeping(housekeeping); err != nil {
			return fmt.Errorf("grove: ingest: %w", err)
		}
	}
	if len(src.Mappings) > 0 {
		if err := e.store.ReplaceMappings(entries); err != nil {
			return fmt.Errorf("grove: ingest: %w", err)
		}
	}
	return nil
}

// Searcher loads the stored ontology, annotations, and housekeeping set
// into immutable in-memory structures and returns a Searcher over them.
// Graph validation runs again at load time, so a database written by an
// older tool cannot smuggle in a malformed graph.
func (e *Engine) Searcher() (*Searcher, error) {
	terms, err := e.store.LoadTerms()
	if err != nil {
		return nil, fmt.Errorf("grove: searcher: %w", err)
	}
	graph, err := ontology.NewGraph(terms)
	if err != nil {
		return nil, fmt.Errorf("grove: searcher: %w", err)
	}
	annotations, err := e.store.LoadAnnotations()
	if err != nil {
		return nil, fmt.Errorf("grove: searcher: %w", err)
	}
	housekeeping, err := e.store.LoadHousekeeping()
	if err != nil {
		return nil, fmt.Errorf("grove: searcher: %w", err)
	}
	return NewSearcher(graph, annot.NewIndex(annotations), housekeeping), nil
}

// Resolver loads the stored mapping tables and returns a Resolver for the
// ordered (source, target) namespace pair.
func (e *Engine) Resolver(source, target string) (*Resolver, error) {
	entries, err := e.store.LoadMappings()
	if err != nil {
		return nil, fmt.Errorf("grove: resolver: %w", err)
	}
	return NewResolver(mapping.NewTables(entries), source, target)
}

func parseOntologyFile(path string) ([]ontology.Term, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	terms, err := ontology.ParseOBO(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return terms, nil
}

func parseAnnotationFile(path string) ([]annot.Annotation, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	annotations, err := annot.ParseGAF(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return annotations, nil
}

func parseGeneListFile(path string) ([]string, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	genes, err := annot.ParseGeneList(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return genes, nil
}

func parseMappingFile(path string) ([]mapping.Entry, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	entries, err := mapping.ParseTSV(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}
