// Package batch runs the extract-and-outline pipeline over a directory of
// PDF files with bounded concurrency. Each document is independent: one
// failure is recorded and skipped, never fatal to the run.
package batch
