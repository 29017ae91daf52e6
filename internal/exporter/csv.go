package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"csvclean/internal/dataset"
)

// AbsentMarker is the literal token written for missing cells.
const AbsentMarker = "NA"

// CSVWriter persists cleaned datasets into a target directory.
type CSVWriter struct {
	dir string
}

// NewCSVWriter creates a writer that places all output under dir.
func NewCSVWriter(dir string) *CSVWriter {
	return &CSVWriter{dir: dir}
}

// WriteCleaned writes the dataset to fileName inside the writer's directory:
// one header row of column labels, then the rows, absent cells as "NA", no
// row-index column. It returns the full path written.
func (w *CSVWriter) WriteCleaned(fileName string, ds *dataset.Dataset) (string, error) {
	fullPath := filepath.Join(w.dir, fileName)

	slog.Debug("writing cleaned CSV",
		slog.String("path", fullPath),
		slog.Int("rows", ds.Rows()),
		slog.Int("cols", ds.Cols()))

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", fullPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(ds.Labels()); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	rows := ds.Rows()
	record := make([]string, ds.Cols())
	for r := 0; r < rows; r++ {
		for c := range ds.Columns {
			record[c] = ds.Columns[c].Cells[r].String(AbsentMarker)
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("write row %d: %w", r, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// WriteEmptyPlaceholder creates an empty output file marking a dataset that
// had no usable data left after cleaning. It returns the full path written.
func (w *CSVWriter) WriteEmptyPlaceholder(fileName string) (string, error) {
	fullPath := filepath.Join(w.dir, fileName)

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(fullPath, nil, 0644); err != nil {
		return "", fmt.Errorf("create placeholder %s: %w", fullPath, err)
	}
	return fullPath, nil
}
