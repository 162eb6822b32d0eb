// Package ioformat (de)serializes samples to and from a self-describing
// YAML document — an external collaborator to the synthesis core, kept
// here as the ambient I/O layer that owns all malformed-input diagnosis so
// package sample never has to.
//
// The on-disk shape is a Document: an explicit variable count N plus two
// ordered lists of traces, each trace an ordered list of N-wide Boolean
// vectors. Using YAML (already pulled in transitively via testify) rather
// than adding a JSON library keeps the dependency set unchanged: N is
// discoverable, list order is preserved, and Booleans round-trip as
// true/false tokens.
package ioformat
