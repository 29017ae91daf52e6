package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"csvclean/internal/config"
	"csvclean/internal/infrastructure"
	"csvclean/internal/pipeline"
)

func main() {
	inDir := flag.String("in", "", "input directory of CSV files (defaults to data/input_csv relative to executable)")
	reportDir := flag.String("reports", "", "output directory for missing-value reports (defaults to data/reports)")
	cleanedDir := flag.String("cleaned", "", "output directory for cleaned CSV files (defaults to data/cleaned_csv)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	paths, err := config.GetPaths(cfg.Paths)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg.Logging.FilePath = paths.GetLogPath("cleaner.log")
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogger()

	if *inDir == "" {
		*inDir = paths.InputDir
	}
	if *reportDir == "" {
		*reportDir = paths.ReportsDir
	}
	if *cleanedDir == "" {
		*cleanedDir = paths.CleanedDir
	}

	logger.Info("Starting CSV cleaning batch",
		slog.String("input_dir", *inDir),
		slog.String("report_dir", *reportDir),
		slog.String("cleaned_dir", *cleanedDir))

	// Stop starting new files on interrupt; the file in flight completes.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := func(message string) {
		fmt.Println(message)
	}

	if err := pipeline.RunBatch(ctx, *inDir, *reportDir, *cleanedDir, sink); err != nil {
		logger.Error("Batch failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
