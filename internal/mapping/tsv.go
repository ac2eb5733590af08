package mapping

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseTSV parses a two-column mapping stream. The header row names the
// source and target namespaces; each following row maps one source
// identifier to one target identifier. A source identifier with several
// targets appears on several rows, and row order fixes candidate order.
func ParseTSV(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("parse mapping: %w", err)
		}
		return nil, fmt.Errorf("parse mapping: empty input, header row required")
	}
	source, target, err := splitRow(scanner.Text(), 1)
	if err != nil {
		return nil, err
	}

	var out []Entry
	line := 1
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		sid, tid, err := splitRow(text, line)
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{
			SourceNamespace: source,
			SourceID:        sid,
			TargetNamespace: target,
			TargetID:        tid,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse mapping: %w", err)
	}
	return out, nil
}

func splitRow(text string, line int) (string, string, error) {
	a, b, ok := strings.Cut(text, "\t")
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if !ok || a == "" || b == "" {
		return "", "", fmt.Errorf("parse mapping: line %d: want two tab-separated columns", line)
	}
	return a, b, nil
}
