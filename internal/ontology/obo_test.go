package ontology

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOBO = `format-version: 1.2
data-version: releases/2024-01-17
ontology: go

[Term]
id: GO:0008150
name: biological_process
namespace: biological_process

[Term]
id: GO:0006955
name: immune response
namespace: biological_process
synonym: "immunity" EXACT []
synonym: "immune system response" RELATED [GOC:add]
is_a: GO:0008150 ! biological_process

[Term]
id: GO:0000000
name: gone
is_obsolete: true

[Typedef]
id: part_of
name: part of
`

func TestParseOBO(t *testing.T) {
	t.Parallel()
	terms, err := ParseOBO(strings.NewReader(sampleOBO))
	require.NoError(t, err)
	require.Len(t, terms, 2) // obsolete term dropped, typedef skipped

	root := terms[0]
	assert.Equal(t, "GO:0008150", root.ID)
	assert.Equal(t, "biological_process", root.Name)
	assert.Empty(t, root.Parents)

	imm := terms[1]
	assert.Equal(t, "GO:0006955", imm.ID)
	assert.Equal(t, "immune response", imm.Name)
	assert.Equal(t, []string{"immunity", "immune system response"}, imm.Synonyms)
	assert.Equal(t, []string{"GO:0008150"}, imm.Parents)
}

func TestParseOBO_FeedsGraph(t *testing.T) {
	t.Parallel()
	terms, err := ParseOBO(strings.NewReader(sampleOBO))
	require.NoError(t, err)
	g, err := NewGraph(terms)
	require.NoError(t, err)

	kids, err := g.Children("GO:0008150")
	require.NoError(t, err)
	assert.Equal(t, []string{"GO:0006955"}, kids)
}

func TestParseOBO_MissingID(t *testing.T) {
	t.Parallel()
	_, err := ParseOBO(strings.NewReader("[Term]\nname: nameless\n"))
	require.Error(t, err)
}

func TestParseTermRef(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "GO:0008150", parseTermRef("GO:0008150 ! biological_process"))
	assert.Equal(t, "GO:0008150", parseTermRef("GO:0008150"))
}
