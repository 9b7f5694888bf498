// Package view computes the read-only projections of a build: the summary
// grouping, the normalised radar statistics and the per-tree totals.
// Every function is pure and recomputed on each call.
package view
