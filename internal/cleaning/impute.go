package cleaning

import (
	"math"

	"csvclean/internal/dataset"
)

// ImputeResult records what imputation did to one column, for traceability.
type ImputeResult struct {
	Label   string
	Filled  int
	Mean    float64
	Skipped bool // true when the column had no present values to average
}

// MeanImpute fills absent cells in every numeric column with that column's
// mean of present values, rounded to three decimals, and rounds all present
// values to three decimals for consistent output. Columns that still hold
// text are left untouched, and a column that is entirely absent keeps its
// absent markers (there is no mean to use); such columns are reported with
// Skipped set. Mutates the dataset in place.
func MeanImpute(ds *dataset.Dataset) []ImputeResult {
	var results []ImputeResult

	for i := range ds.Columns {
		col := &ds.Columns[i]
		if hasText(col) {
			continue
		}

		sum := 0.0
		present := 0
		absent := 0
		for _, cell := range col.Cells {
			switch cell.Kind {
			case dataset.KindNumber:
				sum += cell.Number
				present++
			case dataset.KindAbsent:
				absent++
			}
		}

		if absent == 0 {
			for j, cell := range col.Cells {
				if cell.Kind == dataset.KindNumber {
					col.Cells[j] = dataset.Number(round3(cell.Number))
				}
			}
			continue
		}

		if present == 0 {
			results = append(results, ImputeResult{Label: col.Label, Skipped: true})
			continue
		}

		mean := round3(sum / float64(present))
		for j, cell := range col.Cells {
			switch cell.Kind {
			case dataset.KindNumber:
				col.Cells[j] = dataset.Number(round3(cell.Number))
			case dataset.KindAbsent:
				col.Cells[j] = dataset.Number(mean)
			}
		}
		results = append(results, ImputeResult{Label: col.Label, Filled: absent, Mean: mean})
	}

	return results
}

func hasText(col *dataset.Column) bool {
	for _, cell := range col.Cells {
		if cell.Kind == dataset.KindText {
			return true
		}
	}
	return false
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
