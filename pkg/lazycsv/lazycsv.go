// Package lazycsv provides a zero-copy, lazily decoding CSV scanner over an
// in-memory byte buffer.
//
// The parser walks the buffer once, yielding cells and row boundaries as
// extents into the original data. Nothing is copied, validated, or decoded
// until a caller asks for a specific cell's text, so files where only a few
// cells are ever inspected parse at byte-search speed.
//
// The accepted grammar is a strict subset of RFC 4180:
//
//   - Cells are separated by a configurable single byte, ',' by default.
//   - Rows are separated by \n or \r\n. A bare \r is a syntax error.
//   - A quote may only appear as the very first byte of a cell. Inside a
//     quoted cell, a literal quote is written as "".
//   - No whitespace padding around cells; spaces are literal content.
//   - Text decoding accepts ASCII/UTF-8 only. Cell.Bytes bypasses that.
//
// # Iterating items
//
//	c := lazycsv.New(buf)
//	for c.Scan() {
//		item := c.Item()
//		if item.Kind == lazycsv.ItemCell {
//			text, err := item.Cell.Text()
//			// ...
//		}
//	}
//	if err := c.Err(); err != nil {
//		// handle syntax error
//	}
//
// # Iterating fixed-width rows
//
//	rows := lazycsv.New(buf).Rows(3)
//	for rows.Scan() {
//		row := rows.Row() // []Cell of length 3, reused between Scans
//		// ...
//	}
//	if err := rows.Err(); err != nil {
//		// handle syntax or row-shape error
//	}
//
// # Thread safety
//
// The buffer is never mutated, so any number of independent parsers may
// read the same buffer concurrently. A single Csv or Rows value is a
// forward-only cursor and must not be shared between goroutines without
// external synchronization.
package lazycsv

import (
	"github.com/shapestone/lazycsv/internal/scan"
)

// quote is the fixed quote byte. Unlike the separator it is not
// configurable.
const quote = '"'

// Options configures a parser. The configuration is fixed at construction
// time and immutable afterwards.
type Options struct {
	// Separator is the cell delimiter byte. Default: ','.
	// It must not be '\n', '\r', or '"'.
	Separator byte

	// NoAlloc forbids the allocating decode path. With NoAlloc set,
	// Cell.Text on a quoted cell containing doubled quotes fails with
	// ErrAllocDisabled instead of allocating for the unescape.
	NoAlloc bool
}

// DefaultOptions returns the default parser configuration.
func DefaultOptions() Options {
	return Options{Separator: ','}
}

// ItemKind discriminates the two item variants yielded by Scan.
type ItemKind uint8

const (
	// ItemCell indicates the current row continues with a cell.
	ItemCell ItemKind = iota
	// ItemRowEnd indicates the current row ended.
	ItemRowEnd
)

// Item is a single element of the flat iteration sequence: either a cell
// or a row boundary.
type Item struct {
	// Kind tells which variant this item is.
	Kind ItemKind
	// Cell holds the cell extent. Valid only when Kind is ItemCell.
	Cell Cell
}

type iterState uint8

const (
	stateCell   iterState = iota // cursor is at the start of a cell
	stateRowEnd                  // a row boundary is pending
	stateDone                    // end of input or sticky error
)

// Csv is a forward-only CSV scanner over an immutable byte buffer.
//
// The zero value is not usable; construct with New or NewWithOptions. The
// buffer must stay alive and unmodified for as long as the parser and any
// Cell or zero-copy text derived from it are in use.
type Csv struct {
	buf []byte
	sep byte

	noAlloc  bool
	state    iterState
	pos      int
	afterSep bool
	item     Item
	err      error
}

// New creates a parser over buf with the default configuration.
func New(buf []byte) *Csv {
	return NewWithOptions(buf, DefaultOptions())
}

// NewWithOptions creates a parser over buf with the given configuration.
// A zero Separator falls back to ','.
func NewWithOptions(buf []byte, opts Options) *Csv {
	sep := opts.Separator
	if sep == 0 {
		sep = ','
	}
	return &Csv{buf: buf, sep: sep, noAlloc: opts.NoAlloc}
}

// Scan advances to the next item. It returns false when the input is
// exhausted or a syntax error occurred; Err distinguishes the two.
//
// Each row yields its cells followed by exactly one ItemRowEnd. A final
// row without a trailing newline still ends with a row boundary, and a
// trailing newline at end of input does not open an empty extra row.
func (c *Csv) Scan() bool {
	switch c.state {
	case stateRowEnd:
		c.item = Item{Kind: ItemRowEnd}
		c.state = stateCell
		return true
	case stateDone:
		return false
	}

	if c.pos >= len(c.buf) {
		if c.afterSep {
			// A separator just before end of input opens one last
			// empty cell.
			c.afterSep = false
			c.item = Item{Kind: ItemCell, Cell: Cell{buf: c.buf[len(c.buf):], noAlloc: c.noAlloc}}
			c.state = stateRowEnd
			return true
		}
		c.state = stateDone
		return false
	}
	return c.scanCell()
}

// Item returns the item produced by the last successful Scan.
func (c *Csv) Item() Item { return c.item }

// Err returns the sticky syntax error, or nil if iteration ended cleanly
// or is still in progress.
func (c *Csv) Err() error { return c.err }

// SkipRows skips the next n rows by searching for newlines only, without
// recognizing cells. It is cheaper than scanning row by row and returns
// the receiver for chaining.
//
// A pending row boundary counts toward the row it terminates, not toward
// the n rows being skipped.
func (c *Csv) SkipRows(n int) *Csv {
	if c.state == stateDone {
		return c
	}
	start := c.pos
	for i := 0; i < n; i++ {
		nl := scan.IndexByteFrom(c.buf, start, '\n')
		if nl < 0 {
			c.state = stateDone
			return c
		}
		start = nl + 1
	}
	c.pos = start
	c.state = stateCell
	c.afterSep = false
	return c
}

// scanCell recognizes exactly one cell at the cursor and consumes its
// terminating delimiter.
func (c *Csv) scanCell() bool {
	start := c.pos
	var cell Cell
	var term int

	if c.buf[start] == quote {
		q, ok := c.closingQuote(start)
		if !ok {
			return false
		}
		cell = Cell{buf: c.buf[start+1 : q], quoted: true, noAlloc: c.noAlloc}
		term = q + 1
		if term < len(c.buf) {
			if b := c.buf[term]; b != c.sep && b != '\n' && b != '\r' {
				return c.fail(term, ErrQuotePlacement)
			}
		}
	} else {
		term = scan.IndexAny3From(c.buf, start, c.sep, '\n', '\r')
		if term < 0 {
			term = len(c.buf)
		}
		cell = Cell{buf: c.buf[start:term], noAlloc: c.noAlloc}
	}

	c.afterSep = false
	switch {
	case term >= len(c.buf):
		c.pos = len(c.buf)
		c.state = stateRowEnd
	case c.buf[term] == c.sep:
		c.pos = term + 1
		c.afterSep = true
	case c.buf[term] == '\n':
		c.pos = term + 1
		c.state = stateRowEnd
	default: // '\r'
		if term+1 >= len(c.buf) || c.buf[term+1] != '\n' {
			return c.fail(term, ErrBareCR)
		}
		c.pos = term + 2
		c.state = stateRowEnd
	}
	c.item = Item{Kind: ItemCell, Cell: cell}
	return true
}

// closingQuote locates the closing quote of the quoted cell opened at
// start, skipping doubled quotes. Reports an unterminated-quote error when
// the buffer ends first.
func (c *Csv) closingQuote(start int) (int, bool) {
	from := start + 1
	for {
		q := scan.IndexByteFrom(c.buf, from, quote)
		if q < 0 {
			c.fail(start, ErrUnterminatedQuote)
			return 0, false
		}
		if q+1 < len(c.buf) && c.buf[q+1] == quote {
			from = q + 2
			continue
		}
		return q, true
	}
}

// fail records a fatal syntax error and halts iteration.
func (c *Csv) fail(offset int, err error) bool {
	c.err = &SyntaxError{Offset: offset, Err: err}
	c.state = stateDone
	return false
}
