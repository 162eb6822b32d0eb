package ioformat

import "errors"

// Malformed-sample errors. These never reach package sample — ioformat is
// responsible for rejecting a document before it is handed to the core.
var (
	// ErrMalformedN indicates the document's N is missing or non-positive.
	ErrMalformedN = errors.New("ioformat: missing or non-positive variable count N")

	// ErrEmptyTrace indicates a trace with zero valuations was read.
	ErrEmptyTrace = errors.New("ioformat: empty trace")

	// ErrWidthMismatch indicates a valuation's width does not equal N.
	ErrWidthMismatch = errors.New("ioformat: valuation width does not match N")
)

// Document is the on-disk representation of a sample: an explicit variable
// count plus two ordered lists of traces, each trace an ordered list of
// N-wide Boolean vectors.
type Document struct {
	N        int       `yaml:"n"`
	Positive [][][]bool `yaml:"positive"`
	Negative [][][]bool `yaml:"negative"`
}
