// Package model defines the shared value types for outline extraction:
// bounding-box geometry and the text spans produced by layout extraction.
//
// All types are plain values with no behavior beyond simple derived
// accessors. They are constructed once per document run and never mutated,
// which keeps cross-document parallelism lock-free.
package model
