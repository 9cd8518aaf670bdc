package lazycsv

import (
	"bytes"
	"unicode/utf8"
	"unsafe"
)

// Cell is a single cell of a row, referencing the parse buffer by extent.
//
// A Cell never owns memory: its bytes are a subslice of the buffer the
// parser was constructed over, and it stays valid for as long as that
// buffer does, independent of further iteration. For quoted cells the
// extent excludes the delimiting quote bytes but still contains any
// doubled-quote escape sequences; those are collapsed lazily by Text.
type Cell struct {
	buf     []byte
	quoted  bool
	noAlloc bool
}

// Bytes returns the raw cell bytes without validation or unescaping.
//
// The returned slice shares memory with the parse buffer and must not be
// modified. This accessor is the escape hatch for binary-safe or
// non-UTF-8 content that the validated Text path rejects.
func (c Cell) Bytes() []byte { return c.buf }

// Quoted reports whether the cell was delimited by quote bytes in the
// input.
func (c Cell) Quoted() bool { return c.quoted }

// Text decodes the cell into validated UTF-8 text.
//
// Unquoted cells and quoted cells without doubled quotes decode without
// copying: the returned string aliases the parse buffer. Only a quoted
// cell containing doubled quotes allocates, to collapse each "" into a
// single quote. If the parser was built with NoAlloc, that last case
// fails with ErrAllocDisabled instead.
//
// An unquoted cell containing a quote byte is malformed; Text reports
// ErrQuotePlacement for it rather than returning text.
func (c Cell) Text() (string, error) {
	return c.text(!c.noAlloc)
}

// TextNoAlloc is like Text but never allocates: when unescaping would be
// required it fails with ErrAllocDisabled regardless of how the parser
// was configured.
func (c Cell) TextNoAlloc() (string, error) {
	return c.text(false)
}

// Equal reports whether both cells hold identical raw bytes.
func (c Cell) Equal(other Cell) bool { return bytes.Equal(c.buf, other.buf) }

// Compare orders cells lexicographically by raw bytes.
func (c Cell) Compare(other Cell) int { return bytes.Compare(c.buf, other.buf) }

func (c Cell) text(allowAlloc bool) (string, error) {
	if !c.quoted {
		// The cell recognizer does not look for quotes inside unquoted
		// cells; the check is deferred to here so the unquoted scan
		// stays a single pass.
		if bytes.IndexByte(c.buf, quote) >= 0 {
			return "", ErrQuotePlacement
		}
		if !utf8.Valid(c.buf) {
			return "", ErrInvalidUTF8
		}
		return unsafeString(c.buf), nil
	}

	i := bytes.IndexByte(c.buf, quote)
	if i < 0 {
		if !utf8.Valid(c.buf) {
			return "", ErrInvalidUTF8
		}
		return unsafeString(c.buf), nil
	}
	if !allowAlloc {
		return "", ErrAllocDisabled
	}
	return c.unescape(i)
}

// unescape copies the cell while collapsing doubled quotes, starting from
// the first quote at offset i. Quotes inside a quoted extent always come
// in pairs; the recognizer rejects anything else.
func (c Cell) unescape(i int) (string, error) {
	out := make([]byte, 0, len(c.buf)-1)
	rest := c.buf
	for {
		out = append(out, rest[:i]...)
		out = append(out, quote)
		rest = rest[i+2:]
		j := bytes.IndexByte(rest, quote)
		if j < 0 {
			out = append(out, rest...)
			break
		}
		i = j
	}
	if !utf8.Valid(out) {
		return "", ErrInvalidUTF8
	}
	return unsafeString(out), nil
}

// unsafeString converts b to a string without copying.
//
// This is safe here because callers only pass subslices of the immutable
// parse buffer, or scratch buffers that are never touched again after the
// conversion.
func unsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
