package mapping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	return []Entry{
		{SourceNamespace: "ensembl_gene_id", SourceID: "ENSG1", TargetNamespace: "symbol", TargetID: "TP53"},
		{SourceNamespace: "ensembl_gene_id", SourceID: "ENSG2", TargetNamespace: "symbol", TargetID: "DUP1"},
		{SourceNamespace: "ensembl_gene_id", SourceID: "ENSG2", TargetNamespace: "symbol", TargetID: "DUP2"},
		{SourceNamespace: "symbol", SourceID: "TP53", TargetNamespace: "ensembl_gene_id", TargetID: "ENSG1"},
	}
}

func TestTables_PairLookup(t *testing.T) {
	t.Parallel()
	ts := NewTables(sampleEntries())

	fwd, err := ts.Table("ensembl_gene_id", "symbol")
	require.NoError(t, err)
	assert.Equal(t, 2, fwd.Len())

	rev, err := ts.Table("symbol", "ensembl_gene_id")
	require.NoError(t, err)
	assert.Equal(t, 1, rev.Len())
}

func TestTables_UnsupportedPair(t *testing.T) {
	t.Parallel()
	ts := NewTables(sampleEntries())
	_, err := ts.Table("symbol", "entrez")
	var uerr *UnsupportedNamespaceError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, Pair{Source: "symbol", Target: "entrez"}, uerr.Pair)
}

func TestTable_CandidateOrderAndAbsence(t *testing.T) {
	t.Parallel()
	ts := NewTables(sampleEntries())
	tab, err := ts.Table("ensembl_gene_id", "symbol")
	require.NoError(t, err)

	assert.Equal(t, []string{"TP53"}, tab.Candidates("ENSG1"))
	// Multi-target candidates keep load order.
	assert.Equal(t, []string{"DUP1", "DUP2"}, tab.Candidates("ENSG2"))
	// Absence is a valid empty result.
	assert.Empty(t, tab.Candidates("ENSG_UNKNOWN"))
}

func TestNewTables_DuplicateRowsCollapse(t *testing.T) {
	t.Parallel()
	ts := NewTables([]Entry{
		{SourceNamespace: "a", SourceID: "x", TargetNamespace: "b", TargetID: "y"},
		{SourceNamespace: "a", SourceID: "x", TargetNamespace: "b", TargetID: "y"},
	})
	tab, err := ts.Table("a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, tab.Candidates("x"))
}

func TestParseTSV(t *testing.T) {
	t.Parallel()
	in := "ensembl_gene_id\tsymbol\n" +
		"# deprecated block\n" +
		"ENSG1\tTP53\n" +
		"ENSG2\tDUP1\n" +
		"ENSG2\tDUP2\n"
	entries, err := ParseTSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{
		SourceNamespace: "ensembl_gene_id",
		SourceID:        "ENSG1",
		TargetNamespace: "symbol",
		TargetID:        "TP53",
	}, entries[0])
}

func TestParseTSV_Malformed(t *testing.T) {
	t.Parallel()
	_, err := ParseTSV(strings.NewReader(""))
	require.Error(t, err)

	_, err = ParseTSV(strings.NewReader("a\tb\nonly-one-column\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
