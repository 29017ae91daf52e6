package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvclean/internal/dataset"
)

func TestWriteCleaned(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir)

	ds := &dataset.Dataset{Columns: []dataset.Column{
		{Label: "Revenue", Cells: []dataset.Cell{
			dataset.Number(100), dataset.Number(200), dataset.Absent(),
		}},
		{Label: "Count", Cells: []dataset.Cell{
			dataset.Number(1.5), dataset.Absent(), dataset.Number(3),
		}},
	}}

	path, err := writer.WriteCleaned("sales_clean.csv", ds)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sales_clean.csv"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Revenue,Count\n100,1.5\n200,NA\nNA,3\n",
		string(content))
}

func TestWriteCleanedCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	writer := NewCSVWriter(dir)

	ds := &dataset.Dataset{Columns: []dataset.Column{
		{Label: "a", Cells: []dataset.Cell{dataset.Number(1)}},
	}}

	path, err := writer.WriteCleaned("a_clean.csv", ds)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestWriteEmptyPlaceholder(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir)

	path, err := writer.WriteEmptyPlaceholder("gone_clean_empty.csv")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}
