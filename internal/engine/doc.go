// Package engine dispatches file scrub tasks across a fixed worker pool and
// collects per-file outcomes in a tally ledger.
package engine
