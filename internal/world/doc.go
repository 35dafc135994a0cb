// Package world holds the inhabitants of one line under a fixed light and
// measures the ground their shadows cover.
//
// Concurrency: World is NOT safe for concurrent use. TotalShadowLength sorts
// internal storage in place, so callers must serialise Add and reads.
package world
