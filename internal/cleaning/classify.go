package cleaning

import (
	"strconv"
	"strings"

	"csvclean/internal/dataset"
)

// ColumnHasNumeric is the single retention predicate for column pruning: a
// column qualifies iff at least one cell is already numeric, or at least one
// text cell parses directly as a number.
func ColumnHasNumeric(col *dataset.Column) bool {
	for _, cell := range col.Cells {
		switch cell.Kind {
		case dataset.KindNumber:
			return true
		case dataset.KindText:
			if _, err := strconv.ParseFloat(strings.TrimSpace(cell.Text), 64); err == nil {
				return true
			}
		}
	}
	return false
}

// PruneNonNumericColumns drops every column with no numeric content, keeping
// the remaining columns in their original relative order. It returns the
// labels of the removed columns.
func PruneNonNumericColumns(ds *dataset.Dataset) []string {
	var kept []dataset.Column
	var removed []string

	for i := range ds.Columns {
		col := &ds.Columns[i]
		if ColumnHasNumeric(col) {
			kept = append(kept, *col)
		} else {
			removed = append(removed, col.Label)
		}
	}

	ds.Columns = kept
	return removed
}
