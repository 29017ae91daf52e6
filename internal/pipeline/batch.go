package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"csvclean/internal/files"
)

// RunBatch walks inputDir recursively, runs the cleaning pipeline once per
// CSV file found, and writes reports and cleaned files into reportDir and
// cleanedDir. Output directories are created up front. Files are processed
// strictly in sequence; a failed file is skipped and the next one attempted.
// Finding no input files is an informational outcome, not an error.
//
// The context is only consulted between files: once a file has started it
// runs to completion, but a cancelled context stops further files from being
// started.
func RunBatch(ctx context.Context, inputDir, reportDir, cleanedDir string, sink LogFunc) error {
	if sink == nil {
		sink = func(string) {}
	}
	logger := slog.Default().With(slog.String("run_id", uuid.NewString()))

	sink("Starting CSV processing...")
	logger.Info("starting batch",
		slog.String("input_dir", inputDir),
		slog.String("report_dir", reportDir),
		slog.String("cleaned_dir", cleanedDir))

	if err := files.EnsureDirectories(reportDir, cleanedDir); err != nil {
		logger.Error("failed to create output directories", slog.String("error", err.Error()))
		return fmt.Errorf("prepare output directories: %w", err)
	}

	found, err := files.FindCSVFiles(inputDir)
	if err != nil {
		logger.Error("failed to scan input directory", slog.String("error", err.Error()))
		return fmt.Errorf("scan input directory: %w", err)
	}

	orch := NewOrchestrator(reportDir, cleanedDir, sink, logger)
	processed := 0
	for _, path := range found {
		if ctx.Err() != nil {
			logger.Warn("batch interrupted before next file",
				slog.Int("processed", processed),
				slog.Int("remaining", len(found)-processed))
			break
		}
		orch.ProcessFile(path)
		processed++
	}

	if len(found) == 0 {
		sink("No CSV files found in the input folder.")
		logger.Info("no input files found", slog.String("input_dir", inputDir))
	}

	sink("All CSV processing finished.")
	logger.Info("batch finished",
		slog.Int("files_found", len(found)),
		slog.Int("files_processed", processed))
	return nil
}
