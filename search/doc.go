// Package search drives the size-stratified synthesis loop: for each size
// in increasing order it enumerates skeletons (package skeleton), labels
// each with formulae (package generate), and returns the first one
// consistent with a sample (package sample).
//
// Two modes share one entry point, Solve, the way tsp.SolveWithMatrix
// dispatches on Options.Algo:
//
//   - Below Options.Threshold, search runs serially over one goroutine.
//     It scans every candidate of the size and returns the consistent
//     formula that is least under ltl.Less — deterministic, reproducible
//     across runs.
//   - At or above Options.Threshold, search fans out one goroutine per
//     skeleton through an errgroup-backed worker pool capped at
//     Options.Workers. The first goroutine to find a consistent formula
//     wins; its sibling goroutines are cancelled cooperatively. Which
//     formula wins is no longer deterministic when more than one skeleton
//     admits a consistent candidate at the same size.
package search
