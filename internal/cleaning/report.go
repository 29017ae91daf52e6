package cleaning

import (
	"fmt"
	"os"
	"strings"
	"time"

	"csvclean/internal/dataset"
)

// MissingStats summarizes missing data in one dataset snapshot, computed
// before imputation.
type MissingStats struct {
	TotalCells   int
	TotalMissing int
	OverallPct   float64
	ColumnLabels []string
	ColumnPct    []float64
	SourceName   string
	GeneratedAt  time.Time
}

// ComputeMissingStats derives missing-value statistics from a dataset without
// mutating it. Percentages are defined as zero when the dataset is empty.
func ComputeMissingStats(ds *dataset.Dataset, sourceName string) MissingStats {
	stats := MissingStats{
		TotalCells:   ds.Size(),
		TotalMissing: ds.AbsentCount(),
		SourceName:   sourceName,
		GeneratedAt:  time.Now(),
	}
	if stats.TotalCells > 0 {
		stats.OverallPct = float64(stats.TotalMissing) / float64(stats.TotalCells) * 100
	}

	rows := ds.Rows()
	for i := range ds.Columns {
		col := &ds.Columns[i]
		pct := 0.0
		if rows > 0 {
			pct = float64(col.AbsentCount()) / float64(rows) * 100
		}
		stats.ColumnLabels = append(stats.ColumnLabels, col.Label)
		stats.ColumnPct = append(stats.ColumnPct, pct)
	}
	return stats
}

// Render formats the report as plain text: a header naming the source file, a
// generation timestamp, the aggregate figures, and the per-column listing.
func (s MissingStats) Render() string {
	lines := []string{
		fmt.Sprintf("Missing Values Report for: %s", s.SourceName),
		fmt.Sprintf("Timestamp: %s", s.GeneratedAt.Format("2006-01-02 15:04:05")),
		"---",
		fmt.Sprintf("Total data points: %d", s.TotalCells),
		fmt.Sprintf("Total missing values: %d", s.TotalMissing),
		fmt.Sprintf("Overall missing data percentage: %.2f%%", s.OverallPct),
		"",
		"Missing values percentage per column:",
	}

	if len(s.ColumnLabels) == 0 {
		lines = append(lines, "No columns to report or dataset is empty.")
		return strings.Join(lines, "\n")
	}

	width := 0
	for _, label := range s.ColumnLabels {
		if len(label) > width {
			width = len(label)
		}
	}
	for i, label := range s.ColumnLabels {
		lines = append(lines, fmt.Sprintf("%-*s  %.2f", width, label, s.ColumnPct[i]))
	}
	return strings.Join(lines, "\n")
}

// WriteReport computes missing-value statistics for the dataset and writes
// the rendered report to outputPath.
func WriteReport(ds *dataset.Dataset, sourceName, outputPath string) error {
	stats := ComputeMissingStats(ds, sourceName)
	if err := os.WriteFile(outputPath, []byte(stats.Render()), 0644); err != nil {
		return fmt.Errorf("write report %s: %w", outputPath, err)
	}
	return nil
}
