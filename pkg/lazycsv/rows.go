package lazycsv

// Rows folds the flat item sequence into rows of a fixed width.
//
// Construct with Csv.Rows. A row with fewer or more cells than the
// expected width is a fatal FieldCountError; rows are never silently
// padded or truncated.
type Rows struct {
	csv   *Csv
	width int
	row   []Cell
	index int
	err   error
}

// Rows wraps the parser in an adapter yielding rows of exactly width
// cells. The adapter consumes the parser; mixing Rows.Scan with direct
// Csv.Scan calls on the same parser leaves both mid-row.
func (c *Csv) Rows(width int) *Rows {
	return &Rows{csv: c, width: width, row: make([]Cell, 0, width)}
}

// Skip skips the next n rows without recognizing their cells and returns
// the receiver for chaining.
func (r *Rows) Skip(n int) *Rows {
	r.csv.SkipRows(n)
	return r
}

// Scan advances to the next row. It returns false when the input is
// exhausted or an error occurred; Err distinguishes the two.
func (r *Rows) Scan() bool {
	if r.err != nil {
		return false
	}
	r.row = r.row[:0]
	for r.csv.Scan() {
		item := r.csv.Item()
		if item.Kind == ItemRowEnd {
			if len(r.row) != r.width {
				r.err = &FieldCountError{Row: r.index, Expected: r.width, Actual: len(r.row)}
				return false
			}
			r.index++
			return true
		}
		if len(r.row) == r.width {
			r.err = &FieldCountError{Row: r.index, Expected: r.width, Actual: r.width + 1}
			return false
		}
		r.row = append(r.row, item.Cell)
	}
	if err := r.csv.Err(); err != nil {
		r.err = err
		return false
	}
	if len(r.row) != 0 {
		r.err = &FieldCountError{Row: r.index, Expected: r.width, Actual: len(r.row)}
		return false
	}
	return false
}

// Row returns the cells of the current row. The backing slice is reused
// between calls to Scan; copy the cells out to retain them across rows.
// The cells themselves stay valid for the lifetime of the parse buffer.
func (r *Rows) Row() []Cell { return r.row }

// Err returns the first error encountered, if any.
func (r *Rows) Err() error { return r.err }
