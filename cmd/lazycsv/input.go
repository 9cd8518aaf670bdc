package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
	"github.com/shapestone/lazycsv/internal/mmapfile"
)

// loadInput makes the named input fully addressable as one byte buffer.
// Plain files are memory-mapped, .lz4 files are decompressed into memory,
// and "-" reads stdin. The cleanup function releases whatever backs the
// buffer and must be called before the buffer goes out of use.
func loadInput(path string) ([]byte, func(), error) {
	switch {
	case path == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, func() {}, nil

	case strings.HasSuffix(path, ".lz4"):
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		data, err := io.ReadAll(lz4.NewReader(f))
		if err != nil {
			return nil, nil, fmt.Errorf("decompress %s: %w", path, err)
		}
		return data, func() {}, nil

	default:
		return mmapfile.Map(path)
	}
}

// parseSeparator turns the --separator flag value into a single byte.
// The escape "\t" is accepted for tab-separated input.
func parseSeparator(s string) (byte, error) {
	if s == "\\t" {
		return '\t', nil
	}
	if len(s) != 1 || s[0] >= 0x80 {
		return 0, fmt.Errorf("separator must be a single ASCII character, got %q", s)
	}
	if s[0] == '\n' || s[0] == '\r' || s[0] == '"' {
		return 0, fmt.Errorf("separator %q conflicts with the CSV grammar", s)
	}
	return s[0], nil
}
