package ontology

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const scannerBufferSize = 1 << 20 // ontology files carry long def: lines

// internPool avoids duplicate string allocations for repeated values
// such as namespaces, which recur on every term.
type internPool struct {
	m map[string]string
}

func newInternPool() *internPool {
	return &internPool{m: make(map[string]string, 16)}
}

func (p *internPool) get(s string) string {
	if v, ok := p.m[s]; ok {
		return v
	}
	p.m[s] = s
	return s
}

// ParseOBO parses terms from an OBO-format ontology stream. Obsolete terms
// are dropped, matching the convention that they carry no annotations and
// must not participate in traversal. Typedef and other non-Term stanzas
// are skipped.
func ParseOBO(r io.Reader) ([]Term, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, scannerBufferSize), scannerBufferSize)

	var terms []Term
	pool := newInternPool()

	for scanner.Scan() {
		if scanner.Text() != "[Term]" {
			continue
		}
		t, obsolete := parseTermStanza(scanner, pool)
		if obsolete {
			continue
		}
		if t.ID == "" {
			return nil, fmt.Errorf("parse obo: [Term] stanza without id")
		}
		terms = append(terms, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse obo: %w", err)
	}
	return terms, nil
}

func parseTermStanza(scanner *bufio.Scanner, pool *internPool) (t Term, obsolete bool) {
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break // end of stanza
		}
		key, val, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		switch key {
		case "id":
			t.ID = val
		case "name":
			t.Name = val
		case "namespace":
			t.Namespace = pool.get(val)
		case "synonym":
			if s := parseQuoted(val); s != "" {
				t.Synonyms = append(t.Synonyms, s)
			}
		case "is_a":
			t.Parents = append(t.Parents, parseTermRef(val))
		case "is_obsolete":
			obsolete = val == "true"
		}
	}
	return t, obsolete
}

// parseQuoted extracts the text between the first pair of double quotes,
// as in `synonym: "immunity" EXACT []`.
func parseQuoted(s string) string {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return s
	}
	end := strings.IndexByte(s[start+1:], '"')
	if end < 0 {
		return s[start+1:]
	}
	return s[start+1 : start+1+end]
}

// parseTermRef strips the trailing "! name" comment from a term reference,
// as in `is_a: GO:0008150 ! biological_process`.
func parseTermRef(s string) string {
	if i := strings.IndexByte(s, '!'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
