// Package sample holds a labeled collection of finite traces — the input
// to formula synthesis.
//
// A Sample partitions its traces into positive (must satisfy the learned
// formula) and negative (must not). It is built up via AddPositive/
// AddNegative by the I/O layer and is read-only for the remainder of a
// solve: formula nodes and the sample's trace slices may be referenced
// concurrently by search workers without synchronization.
package sample
