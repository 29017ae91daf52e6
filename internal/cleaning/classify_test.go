package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"csvclean/internal/dataset"
)

func numCol(label string, values ...float64) dataset.Column {
	cells := make([]dataset.Cell, len(values))
	for i, v := range values {
		cells[i] = dataset.Number(v)
	}
	return dataset.Column{Label: label, Cells: cells}
}

func textCol(label string, values ...string) dataset.Column {
	cells := make([]dataset.Cell, len(values))
	for i, v := range values {
		cells[i] = dataset.Text(v)
	}
	return dataset.Column{Label: label, Cells: cells}
}

func TestColumnHasNumeric(t *testing.T) {
	tests := []struct {
		name string
		col  dataset.Column
		want bool
	}{
		{
			name: "numeric cell qualifies",
			col: dataset.Column{Cells: []dataset.Cell{
				dataset.Text("x"), dataset.Number(1),
			}},
			want: true,
		},
		{
			name: "coercible text qualifies",
			col:  textCol("c", "abc", " 42 "),
			want: true,
		},
		{
			name: "pure text does not qualify",
			col:  textCol("c", "x", "y", "z"),
			want: false,
		},
		{
			name: "all absent does not qualify",
			col: dataset.Column{Cells: []dataset.Cell{
				dataset.Absent(), dataset.Absent(),
			}},
			want: false,
		},
		{
			name: "empty column does not qualify",
			col:  dataset.Column{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := tt.col
			assert.Equal(t, tt.want, ColumnHasNumeric(&col))
		})
	}
}

func TestPruneNonNumericColumns(t *testing.T) {
	t.Run("drops non-numeric and preserves order", func(t *testing.T) {
		ds := &dataset.Dataset{Columns: []dataset.Column{
			numCol("a", 1, 2),
			textCol("junk", "x", "y"),
			numCol("b", 3, 4),
		}}

		removed := PruneNonNumericColumns(ds)
		assert.Equal(t, []string{"junk"}, removed)
		assert.Equal(t, []string{"a", "b"}, ds.Labels())
	})

	t.Run("nothing qualifies yields zero columns", func(t *testing.T) {
		ds := &dataset.Dataset{Columns: []dataset.Column{
			textCol("x", "foo"),
			textCol("y", "bar"),
		}}

		removed := PruneNonNumericColumns(ds)
		assert.Equal(t, []string{"x", "y"}, removed)
		assert.Zero(t, ds.Cols())
		assert.Zero(t, ds.Rows())
	})

	t.Run("qualifying columns are never dropped", func(t *testing.T) {
		ds := &dataset.Dataset{Columns: []dataset.Column{
			numCol("keep", 1),
			textCol("keep2", "7"),
		}}

		removed := PruneNonNumericColumns(ds)
		assert.Empty(t, removed)
		assert.Equal(t, []string{"keep", "keep2"}, ds.Labels())
	})
}
