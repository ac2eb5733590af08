package annot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGAF = `!gaf-version: 2.2
!generated-by: test
UniProtKB	ENSG1	TP53	involved_in	GO:0006955	PMID:1	IDA		P	tumor protein	-	protein	taxon:9606	20240101	UniProt
UniProtKB	ENSG2	BRCA1	involved_in	GO:0006955	PMID:2	IDA		P	breast cancer 1	-	protein	taxon:9606	20240101	UniProt
UniProtKB	ENSG3	MYC	NOT|involved_in	GO:0006955	PMID:3	IDA		P	myc proto-oncogene	-	protein	taxon:9606	20240101	UniProt
UniProtKB	ENSG1	TP53	involved_in	GO:0008150	PMID:4	IDA		P	tumor protein	-	protein	taxon:9606	20240101	UniProt
`

func TestParseGAF(t *testing.T) {
	t.Parallel()
	annotations, err := ParseGAF(strings.NewReader(sampleGAF))
	require.NoError(t, err)
	// NOT-qualified row skipped.
	assert.Equal(t, []Annotation{
		{TermID: "GO:0006955", GeneID: "ENSG1"},
		{TermID: "GO:0006955", GeneID: "ENSG2"},
		{TermID: "GO:0008150", GeneID: "ENSG1"},
	}, annotations)
}

func TestParseGAF_TooFewColumns(t *testing.T) {
	t.Parallel()
	_, err := ParseGAF(strings.NewReader("UniProtKB\tENSG1\tTP53\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestIndex_GenesOf(t *testing.T) {
	t.Parallel()
	ix := NewIndex([]Annotation{
		{TermID: "GO:1", GeneID: "g2"},
		{TermID: "GO:1", GeneID: "g1"},
		{TermID: "GO:1", GeneID: "g1"}, // duplicate collapses
		{TermID: "GO:2", GeneID: "g3"},
	})

	assert.Equal(t, []string{"g1", "g2"}, ix.GenesOf("GO:1"))
	assert.Equal(t, []string{"g3"}, ix.GenesOf("GO:2"))
	assert.Empty(t, ix.GenesOf("GO:unknown")) // valid empty result
	assert.Equal(t, 2, ix.Len())
}

func TestParseGeneList(t *testing.T) {
	t.Parallel()
	genes, err := ParseGeneList(strings.NewReader("# housekeeping\nENSG1\n\n  ENSG2  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ENSG1", "ENSG2"}, genes)
}
