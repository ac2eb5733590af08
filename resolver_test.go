package grove

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltao/grove/internal/mapping"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	tables := mapping.NewTables([]mapping.Entry{
		{SourceNamespace: "ensembl_gene_id", SourceID: "ENSG1", TargetNamespace: "symbol", TargetID: "TP53"},
		{SourceNamespace: "ensembl_gene_id", SourceID: "ENSG2", TargetNamespace: "symbol", TargetID: "DUP1"},
		{SourceNamespace: "ensembl_gene_id", SourceID: "ENSG2", TargetNamespace: "symbol", TargetID: "DUP2"},
	})
	r, err := NewResolver(tables, "ensembl_gene_id", "symbol")
	require.NoError(t, err)
	return r
}

func TestNewResolver_UnsupportedPair(t *testing.T) {
	t.Parallel()
	_, err := NewResolver(mapping.NewTables(nil), "ensembl_gene_id", "symbol")
	var uerr *UnsupportedNamespaceError
	require.ErrorAs(t, err, &uerr)
}

func TestResolver_Namespaces(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t)
	assert.Equal(t, "ensembl_gene_id", r.Source())
	assert.Equal(t, "symbol", r.Target())
}

func TestConvertOne(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t)

	assert.Equal(t, []string{"TP53"}, r.ConvertOne("ENSG1"))
	// All candidates, in table order, never silently dropped.
	assert.Equal(t, []string{"DUP1", "DUP2"}, r.ConvertOne("ENSG2"))
	// Unknown identifier is a valid empty result.
	assert.Empty(t, r.ConvertOne("ENSG_UNKNOWN"))
}

func TestResolve_Tagged(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t)

	res := r.Resolve("ENSG1")
	assert.True(t, res.Resolved())
	assert.False(t, res.Ambiguous())
	assert.Equal(t, "TP53", res.First())

	res = r.Resolve("ENSG2")
	assert.True(t, res.Ambiguous())
	assert.Equal(t, "DUP1", res.First())

	res = r.Resolve("ENSG_UNKNOWN")
	assert.False(t, res.Resolved())
	assert.Equal(t, Unresolved, res.First())
}

func TestConvertList_TotalAndOrdered(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t)

	out := r.ConvertList([]string{"ENSG1", "ENSG_UNKNOWN", "ENSG2"})
	assert.Equal(t, []string{"TP53", Unresolved, "DUP1"}, out)
}

func TestConvertList_PreservesLength(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t)

	for _, in := range [][]string{
		nil,
		{},
		{"ENSG1"},
		{"ENSG_UNKNOWN", "ENSG_UNKNOWN"},
		{"ENSG1", "ENSG2", "ENSG1"},
	} {
		assert.Len(t, r.ConvertList(in), len(in))
	}
}
