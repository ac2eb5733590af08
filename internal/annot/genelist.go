package annot

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseGeneList parses a plain gene list: one identifier per line, blank
// lines and '#' comments skipped. Used for the housekeeping reference set.
func ParseGeneList(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var out []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse gene list: %w", err)
	}
	return out, nil
}
