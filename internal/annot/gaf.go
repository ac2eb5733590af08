package annot

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// GAF 2.x column layout (0-based) for the fields we read.
const (
	gafColObjectID  = 1 // DB object ID: the stable gene accession
	gafColQualifier = 3
	gafColTermID    = 4
	gafMinColumns   = 5
)

const gafScannerBufferSize = 1 << 20

// ParseGAF parses (term, gene) pairs from a GAF 2.x annotation stream.
// Comment lines start with '!'. NOT-qualified rows assert the absence of
// an association and are skipped.
func ParseGAF(r io.Reader) ([]Annotation, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, gafScannerBufferSize), gafScannerBufferSize)

	var out []Annotation
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" || strings.HasPrefix(text, "!") {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < gafMinColumns {
			return nil, fmt.Errorf("parse gaf: line %d: %d columns, want at least %d", line, len(fields), gafMinColumns)
		}
		if hasNotQualifier(fields[gafColQualifier]) {
			continue
		}
		gene := fields[gafColObjectID]
		term := fields[gafColTermID]
		if gene == "" || term == "" {
			return nil, fmt.Errorf("parse gaf: line %d: empty gene or term identifier", line)
		}
		out = append(out, Annotation{TermID: term, GeneID: gene})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse gaf: %w", err)
	}
	return out, nil
}

// hasNotQualifier reports whether a pipe-separated qualifier field
// contains NOT, as in "NOT|contributes_to".
func hasNotQualifier(qualifier string) bool {
	for _, q := range strings.Split(qualifier, "|") {
		if q == "NOT" {
			return true
		}
	}
	return false
}
