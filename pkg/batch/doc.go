// Package batch drives many handshake pairs from several workers.
//
// Each Side is processed by its own goroutine, which joins its handles in
// order. Because every pair completes on exactly one of its two sides, the
// number of successful results across all sides equals the number of pairs
// that were joined on both ends.
//
// Key constructs:
// - Pairs: create n pairs split into left and right slices
// - Run: join all sides concurrently and collect results per side
// - Completed: keep only the combined values
// - WithLogger/WithReleaseRemaining: context options for Run
package batch
