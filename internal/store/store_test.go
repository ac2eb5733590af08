package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltao/grove/internal/annot"
	"github.com/ltao/grove/internal/mapping"
	"github.com/ltao/grove/internal/ontology"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "grove.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate())
	return s
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.Migrate())
}

func TestTerms_RoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	in := []ontology.Term{
		{ID: "GO:1", Name: "root", Namespace: "biological_process"},
		{ID: "GO:2", Name: "child", Namespace: "biological_process",
			Synonyms: []string{"zeta", "alpha"}, Parents: []string{"GO:1"}},
	}
	require.NoError(t, s.ReplaceTerms(in))

	out, err := s.LoadTerms()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTerms_ReplaceOverwrites(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.ReplaceTerms([]ontology.Term{{ID: "GO:old", Name: "old"}}))
	require.NoError(t, s.ReplaceTerms([]ontology.Term{{ID: "GO:new", Name: "new"}}))

	out, err := s.LoadTerms()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "GO:new", out[0].ID)
}

func TestAnnotations_RoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	in := []annot.Annotation{
		{TermID: "GO:1", GeneID: "g1"},
		{TermID: "GO:1", GeneID: "g1"}, // duplicate collapses
		{TermID: "GO:2", GeneID: "g2"},
	}
	require.NoError(t, s.ReplaceAnnotations(in))

	out, err := s.LoadAnnotations()
	require.NoError(t, err)
	assert.Equal(t, []annot.Annotation{
		{TermID: "GO:1", GeneID: "g1"},
		{TermID: "GO:2", GeneID: "g2"},
	}, out)
}

func TestHousekeeping_RoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.ReplaceHousekeeping([]string{"b", "a", "a"}))

	out, err := s.LoadHousekeeping()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestMappings_RoundTripPreservesCandidateOrder(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	in := []mapping.Entry{
		{SourceNamespace: "acc", SourceID: "ENSG2", TargetNamespace: "sym", TargetID: "ZZZ"},
		{SourceNamespace: "acc", SourceID: "ENSG2", TargetNamespace: "sym", TargetID: "AAA"},
		{SourceNamespace: "acc", SourceID: "ENSG1", TargetNamespace: "sym", TargetID: "TP53"},
	}
	require.NoError(t, s.ReplaceMappings(in))

	out, err := s.LoadMappings()
	require.NoError(t, err)
	require.Len(t, out, 3)

	tab, err := mapping.NewTables(out).Table("acc", "sym")
	require.NoError(t, err)
	// ZZZ was loaded before AAA; ordinal keeps it first despite sorting
	// by every other column.
	assert.Equal(t, []string{"ZZZ", "AAA"}, tab.Candidates("ENSG2"))
}
