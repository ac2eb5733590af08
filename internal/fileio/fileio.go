// Package fileio opens the data files the ingest pipeline consumes.
// Released ontology and annotation files ship gzipped; Open decompresses
// transparently based on the file extension.
package fileio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Close() error {
	gerr := g.Reader.Close()
	ferr := g.file.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}

// Open opens path for reading, wrapping it in a gzip decompressor when the
// name ends in .gz.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &gzipReadCloser{Reader: zr, file: f}, nil
}
