// Package record defines the immutable value objects produced by the
// scraping pipeline: Event, Race, Result, and Segment.
//
// Records are fully assembled by the builders in a single pass and never
// mutated afterwards. Each Race and Result carries a non-owning back-reference
// to its parent (by URL), and each Event is assigned a deterministic SHA1-based
// ID generated from its stable fields, enabling reliable identification of the
// same event across runs.
package record
