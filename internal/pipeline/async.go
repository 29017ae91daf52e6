package pipeline

import "context"

// RunBatchAsync runs one batch on its own goroutine and streams progress
// messages over the returned channel, preserving emission order. The message
// channel is closed when the batch ends; the error channel then carries the
// batch result. This is the delivery mechanism interactive callers use to
// stay responsive while a batch runs. Cancelling the context stops further
// files from being started but, as with RunBatch, never aborts a file in
// flight.
func RunBatchAsync(ctx context.Context, inputDir, reportDir, cleanedDir string) (<-chan string, <-chan error) {
	messages := make(chan string, 64)
	done := make(chan error, 1)

	go func() {
		defer close(messages)
		sink := func(message string) {
			messages <- message
		}
		done <- RunBatch(ctx, inputDir, reportDir, cleanedDir, sink)
	}()

	return messages, done
}
