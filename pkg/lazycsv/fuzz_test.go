//go:build go1.18
// +build go1.18

package lazycsv

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

// FuzzScan feeds random inputs through the full pipeline: item iteration,
// lazy decode of every cell, and the row adapter. The engine must never
// panic, every yielded extent must lie inside the input buffer, and the
// item sequence must keep its shape (cells grouped by exactly one row
// boundary each).
// Run with: go test -fuzz=FuzzScan -fuzztime=30s ./pkg/lazycsv
func FuzzScan(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"a,b,c",
		"a,b,c\n",
		"a,b\nc,d",
		"\"quoted\"",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"\"multi\nline\"",
		"a,\"b\",c",
		"\r\n",
		"a\r\nb",
		"a,b,c\r\nd,e,f",
		",,",
		"\"\"",
		"\"\"\"\"",
		"a,\"b,c\",d",
		"\"a\"\"b\"",
		"a\"b,c",
		"\"a\"x",
		"a\r",
		"\xff,\xfe",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		buf := []byte(input)

		c := New(buf)
		var cells []Cell
		cellsInRow := 0
		for c.Scan() {
			item := c.Item()
			if item.Kind == ItemRowEnd {
				cellsInRow = 0
				continue
			}
			cellsInRow++
			cell := item.Cell
			cells = append(cells, cell)

			raw := cell.Bytes()
			if len(raw) > 0 {
				if !inBuffer(buf, raw) {
					t.Fatalf("cell %q does not alias the input buffer", raw)
				}
			}

			text, err := cell.Text()
			if err != nil {
				continue
			}
			if !utf8.ValidString(text) {
				t.Fatalf("Text() returned invalid UTF-8: %q", text)
			}
			again, err := cell.Text()
			if err != nil || again != text {
				t.Fatalf("Text() not idempotent: %q then (%q, %v)", text, again, err)
			}
		}
		if c.Err() == nil && cellsInRow != 0 {
			t.Fatalf("iteration ended cleanly with %d cells after the last row boundary", cellsInRow)
		}

		// Replaying the buffer must reproduce the same cells.
		replay := New(buf)
		i := 0
		for replay.Scan() {
			item := replay.Item()
			if item.Kind != ItemCell {
				continue
			}
			if i >= len(cells) || !item.Cell.Equal(cells[i]) {
				t.Fatalf("replay diverged at cell %d", i)
			}
			i++
		}
		if i != len(cells) {
			t.Fatalf("replay yielded %d cells, first pass yielded %d", i, len(cells))
		}
	})
}

// inBuffer reports whether sub is a subslice of buf.
func inBuffer(buf, sub []byte) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(buf); i++ {
		if bytes.Equal(buf[i:i+len(sub)], sub) {
			return true
		}
	}
	return false
}
