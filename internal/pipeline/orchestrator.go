package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"strings"

	"csvclean/internal/cleaning"
	"csvclean/internal/dataset"
	"csvclean/internal/exporter"
)

// LogFunc receives human-readable progress messages in emission order. It is
// called from the pipeline's own goroutine; callers that feed a UI must hand
// the message off to their own context.
type LogFunc func(message string)

// fileState names the orchestrator's per-file processing states.
type fileState string

const (
	stateLoading           fileState = "loading"
	stateHeadersCleaned    fileState = "headers_cleaned"
	stateNumericsExtracted fileState = "numerics_extracted"
	stateColumnsPruned     fileState = "columns_pruned"
	stateEmptyTerminal     fileState = "empty_terminal"
	stateReportWritten     fileState = "report_written"
	stateImputed           fileState = "imputed"
	stateSaved             fileState = "saved"
)

// Orchestrator runs the cleaning pipeline for one file at a time. It owns the
// Dataset for the duration of a ProcessFile call and isolates every failure
// to that file.
type Orchestrator struct {
	reportDir string
	writer    *exporter.CSVWriter
	sink      LogFunc
	logger    *slog.Logger
}

// NewOrchestrator creates an orchestrator writing reports to reportDir and
// cleaned files to cleanedDir. A nil sink discards progress messages; a nil
// logger falls back to slog.Default().
func NewOrchestrator(reportDir, cleanedDir string, sink LogFunc, logger *slog.Logger) *Orchestrator {
	if sink == nil {
		sink = func(string) {}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		reportDir: reportDir,
		writer:    exporter.NewCSVWriter(cleanedDir),
		sink:      sink,
		logger:    logger,
	}
}

func (o *Orchestrator) logf(format string, args ...any) {
	o.sink(fmt.Sprintf(format, args...))
}

func (o *Orchestrator) transition(base string, state fileState) {
	o.logger.Debug("pipeline state",
		slog.String("file", base),
		slog.String("state", string(state)))
}

// ProcessFile runs the full pipeline for one input file. All errors,
// including panics, are contained here: they are logged and the file is
// skipped, never propagated to the batch.
func (o *Orchestrator) ProcessFile(path string) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	o.logf("--- Starting processing for: %s ---", base)
	defer o.logf("--- Finished processing for: %s ---", base)

	defer func() {
		if r := recover(); r != nil {
			o.logf("!!! Critical error processing file %s: %v", base, r)
			o.logf("%s", debug.Stack())
			o.logger.Error("unrecovered failure while processing file",
				slog.String("file", base),
				slog.Any("panic", r))
		}
	}()

	// Loading
	o.transition(base, stateLoading)
	ds, usedFallback, err := dataset.Load(path)
	if usedFallback {
		o.logf("Error reading CSV %s with primary encoding. Trying with fallback encoding.", base)
	}
	if err != nil {
		o.logf("Failed to read %s: %v", base, err)
		o.logger.Warn("skipping unreadable file",
			slog.String("file", base),
			slog.String("error", err.Error()))
		return
	}
	if ds.Cols() == 0 {
		o.logf("File %s is empty or could not be read properly. Skipping.", base)
		return
	}
	o.logf("Initial shape of %s: (%d, %d)", base, ds.Rows(), ds.Cols())

	// HeadersCleaned
	ds.SetLabels(cleaning.NormalizeHeaders(ds.Labels()))
	o.transition(base, stateHeadersCleaned)
	o.logf("Headers cleaned for %s.", base)

	// NumericsExtracted
	o.extractMixedColumns(ds, base)
	o.transition(base, stateNumericsExtracted)
	o.logf("Mixed-type columns processed for %s.", base)

	// ColumnsPruned
	removed := cleaning.PruneNonNumericColumns(ds)
	o.transition(base, stateColumnsPruned)
	if len(removed) > 0 {
		o.logf("Removed fully non-numeric columns from %s: %s", base, strings.Join(removed, ", "))
	}
	if ds.Cols() == 0 {
		o.logf("Warning: no numeric columns found in %s; nothing convertible remains.", base)
	}

	// EmptyTerminal
	if ds.Empty() {
		o.transition(base, stateEmptyTerminal)
		o.logf("Dataset for %s became empty after removing non-numeric columns. No further processing.", base)
		placeholder, err := o.writer.WriteEmptyPlaceholder(stem + "_clean_empty.csv")
		if err != nil {
			o.logf("Failed to save empty placeholder for %s: %v", base, err)
			return
		}
		o.logf("Saved an empty placeholder: %s", placeholder)
		return
	}

	// ReportWritten. A failed report is logged and skipped; imputation and
	// save still proceed.
	reportPath := filepath.Join(o.reportDir, stem+"_report.txt")
	if err := cleaning.WriteReport(ds, stem+".csv", reportPath); err != nil {
		o.logf("Error generating missing values report: %v", err)
		o.logger.Warn("report generation failed",
			slog.String("file", base),
			slog.String("error", err.Error()))
	} else {
		o.transition(base, stateReportWritten)
		o.logf("Missing value report saved to: %s", reportPath)
	}

	// Imputed
	for _, res := range cleaning.MeanImpute(ds) {
		if res.Skipped {
			o.logf("Could not calculate mean for column '%s' (all values absent). Leaving absent markers.", res.Label)
		} else {
			o.logf("Imputed missing values in column '%s' with mean: %.3f", res.Label, res.Mean)
		}
	}
	o.transition(base, stateImputed)
	o.logf("Mean imputation completed for %s.", base)

	// Saved
	cleanedPath, err := o.writer.WriteCleaned(stem+"_clean.csv", ds)
	if err != nil {
		o.logf("Error saving cleaned file for %s: %v", base, err)
		o.logger.Error("failed to save cleaned file",
			slog.String("file", base),
			slog.String("error", err.Error()))
		return
	}
	o.transition(base, stateSaved)
	o.logf("Cleaned file saved: %s", cleanedPath)
	o.logf("Final shape of %s: (%d, %d)", base, ds.Rows(), ds.Cols())
}

// extractMixedColumns applies numeric extraction to every column that still
// holds text, adopting the extracted cells only when at least one number was
// found. A panic inside one column's extraction is contained to that column.
func (o *Orchestrator) extractMixedColumns(ds *dataset.Dataset, base string) {
	for i := range ds.Columns {
		col := &ds.Columns[i]
		if !columnHasTextCells(col) {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					o.logf("Error processing column %s for numeric extraction: %v", col.Label, r)
					o.logger.Warn("column extraction failed",
						slog.String("file", base),
						slog.String("column", col.Label),
						slog.Any("panic", r))
				}
			}()
			if extracted, found := cleaning.ExtractColumn(col); found {
				col.Cells = extracted
			}
		}()
	}
}

func columnHasTextCells(col *dataset.Column) bool {
	for _, cell := range col.Cells {
		if cell.Kind == dataset.KindText {
			return true
		}
	}
	return false
}
