package lazycsv

import (
	"errors"
	"fmt"
)

// Syntax and decode errors. Structured errors returned by the engine wrap
// these sentinels, so callers can classify failures with errors.Is.
var (
	// ErrUnterminatedQuote indicates a quoted cell whose closing quote was
	// never found before the end of the buffer.
	ErrUnterminatedQuote = errors.New("unterminated quoted cell")

	// ErrQuotePlacement indicates a quote byte anywhere other than the very
	// first byte of a cell, or stray bytes between a closing quote and the
	// next delimiter.
	ErrQuotePlacement = errors.New("quote not at start of cell")

	// ErrBareCR indicates a carriage return that is not followed by a line
	// feed. Only \n and \r\n are accepted as row separators.
	ErrBareCR = errors.New("bare \\r not followed by \\n")

	// ErrFieldCount indicates a row whose cell count does not match the
	// width expected by a Rows adapter.
	ErrFieldCount = errors.New("wrong number of cells")

	// ErrInvalidUTF8 indicates cell content that is not valid UTF-8.
	// Cell.Bytes remains available for such cells.
	ErrInvalidUTF8 = errors.New("cell is not valid UTF-8")

	// ErrAllocDisabled indicates a decode that would need to allocate for
	// unescaping while the parser was built with NoAlloc.
	ErrAllocDisabled = errors.New("unescaping requires allocation")
)

// SyntaxError is a fatal parse error. Once the engine reports one, no
// further items are produced.
type SyntaxError struct {
	// Offset is the byte offset into the buffer where the error was
	// detected.
	Offset int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted message with the byte offset.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("lazycsv: syntax error at byte %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *SyntaxError) Unwrap() error { return e.Err }

// FieldCountError is reported by Rows when a row does not contain exactly
// the expected number of cells. It wraps ErrFieldCount.
type FieldCountError struct {
	// Row is the zero-based index of the offending row.
	Row int
	// Expected is the width the adapter was constructed with.
	Expected int
	// Actual is the number of cells seen before the row ended, or
	// Expected+1 when the row kept going past the expected width.
	Actual int
}

// Error returns a formatted message naming the row and both counts.
func (e *FieldCountError) Error() string {
	if e.Actual < e.Expected {
		return fmt.Sprintf("lazycsv: row %d: expected %d cells, row ended after %d", e.Row, e.Expected, e.Actual)
	}
	return fmt.Sprintf("lazycsv: row %d: expected %d cells, row has more", e.Row, e.Expected)
}

// Unwrap returns ErrFieldCount.
func (e *FieldCountError) Unwrap() error { return ErrFieldCount }
