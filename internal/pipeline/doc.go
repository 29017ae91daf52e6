// Package pipeline sequences the cleaning stages per input file and drives
// whole-directory batches.
//
// The Orchestrator owns one file's run: load with encoding fallback,
// normalize headers, extract numerics, prune columns, report missing values,
// impute, save. Every failure is contained at the smallest unit possible
// (cell, column, file); a failed file never aborts the batch. RunBatch is the
// single entry point callers use; it delivers human-readable progress through
// an injected log sink, invoked from the pipeline's own goroutine.
package pipeline
