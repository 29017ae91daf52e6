package cleaning

import (
	"regexp"
	"strconv"
	"strings"

	"csvclean/internal/dataset"
)

// numericPattern matches the first signed integer or decimal literal anywhere
// in a string, scanning left to right.
var numericPattern = regexp.MustCompile(`[-+]?\d*\.?\d+`)

// ExtractNumeric parses a single cell into a number or absent. Numbers pass
// through unchanged. Text is trimmed, percent signs are removed, and the first
// numeric substring is parsed; text with no digits yields absent, as does any
// cell that is already absent.
func ExtractNumeric(cell dataset.Cell) dataset.Cell {
	switch cell.Kind {
	case dataset.KindNumber:
		return cell
	case dataset.KindText:
		s := strings.TrimSpace(strings.ReplaceAll(cell.Text, "%", ""))
		match := numericPattern.FindString(s)
		if match == "" {
			return dataset.Absent()
		}
		v, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return dataset.Absent()
		}
		return dataset.Number(v)
	default:
		return dataset.Absent()
	}
}

// ExtractColumn runs ExtractNumeric over every cell and returns the extracted
// cells together with whether any numeric value was found. The input column is
// not modified; callers decide whether to adopt the result.
func ExtractColumn(col *dataset.Column) ([]dataset.Cell, bool) {
	extracted := make([]dataset.Cell, len(col.Cells))
	found := false
	for i, cell := range col.Cells {
		extracted[i] = ExtractNumeric(cell)
		if extracted[i].Kind == dataset.KindNumber {
			found = true
		}
	}
	return extracted, found
}
