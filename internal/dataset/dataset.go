package dataset

import "strconv"

// CellKind identifies what a cell holds.
type CellKind int

const (
	// KindAbsent marks a missing value.
	KindAbsent CellKind = iota
	// KindNumber marks a floating-point value.
	KindNumber
	// KindText marks raw text that has not (or could not) be converted.
	KindText
)

// Cell is a single value in a column: a number, raw text, or absent.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// Absent returns the missing-value marker.
func Absent() Cell {
	return Cell{Kind: KindAbsent}
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{Kind: KindNumber, Number: v}
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// IsAbsent reports whether the cell is the missing marker.
func (c Cell) IsAbsent() bool {
	return c.Kind == KindAbsent
}

// String renders the cell for delimited output. Absent cells render as the
// given marker; numbers use the shortest representation that round-trips.
func (c Cell) String(absentMarker string) string {
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindText:
		return c.Text
	default:
		return absentMarker
	}
}

// Column is a labeled, ordered sequence of cells.
type Column struct {
	Label string
	Cells []Cell
}

// IsNumeric reports whether the column holds only numbers and absent markers,
// with at least one number present.
func (c *Column) IsNumeric() bool {
	hasNumber := false
	for _, cell := range c.Cells {
		switch cell.Kind {
		case KindText:
			return false
		case KindNumber:
			hasNumber = true
		}
	}
	return hasNumber
}

// AbsentCount returns the number of missing cells in the column.
func (c *Column) AbsentCount() int {
	n := 0
	for _, cell := range c.Cells {
		if cell.IsAbsent() {
			n++
		}
	}
	return n
}

// Dataset is an ordered collection of columns aligned by row index. It is
// mutated in place by every cleaning stage and owned by one file's run.
type Dataset struct {
	Columns []Column
}

// Rows returns the row count, uniform across columns.
func (d *Dataset) Rows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Cells)
}

// Cols returns the column count.
func (d *Dataset) Cols() int {
	return len(d.Columns)
}

// Size returns the total cell count (rows x columns).
func (d *Dataset) Size() int {
	return d.Rows() * d.Cols()
}

// Empty reports whether the dataset has no rows or no columns.
func (d *Dataset) Empty() bool {
	return d.Rows() == 0 || d.Cols() == 0
}

// Labels returns the column labels in order.
func (d *Dataset) Labels() []string {
	labels := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		labels[i] = col.Label
	}
	return labels
}

// SetLabels replaces all column labels. The slice length must match Cols.
func (d *Dataset) SetLabels(labels []string) {
	for i := range d.Columns {
		d.Columns[i].Label = labels[i]
	}
}

// AbsentCount returns the total number of missing cells across all columns.
func (d *Dataset) AbsentCount() int {
	n := 0
	for i := range d.Columns {
		n += d.Columns[i].AbsentCount()
	}
	return n
}
