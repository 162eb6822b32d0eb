package ioformat

import (
	"io"

	"github.com/katalvlaran/ltlsynth/sample"
	"github.com/katalvlaran/ltlsynth/trace"
	"gopkg.in/yaml.v3"
)

// Load reads a Document from r and converts it into a sample.Sample,
// returning the document's variable count N alongside it. Malformed
// documents (missing N, empty traces, ragged valuation widths) are
// rejected here and never reach package sample.
func Load(r io.Reader) (*sample.Sample, int, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, 0, err
	}

	if doc.N <= 0 {
		return nil, 0, ErrMalformedN
	}

	s := sample.New()
	if err := loadInto(s.AddPositive, doc.Positive, doc.N); err != nil {
		return nil, 0, err
	}
	if err := loadInto(s.AddNegative, doc.Negative, doc.N); err != nil {
		return nil, 0, err
	}
	return s, doc.N, nil
}

func loadInto(add func(trace.Trace) error, traces [][][]bool, n int) error {
	for _, raw := range traces {
		if len(raw) == 0 {
			return ErrEmptyTrace
		}
		tr := make(trace.Trace, len(raw))
		for i, v := range raw {
			if len(v) != n {
				return ErrWidthMismatch
			}
			tr[i] = trace.Valuation(v)
		}
		if err := add(tr); err != nil {
			return err
		}
	}
	return nil
}

// Save writes s as a Document to w, with N as the declared variable width.
func Save(w io.Writer, s *sample.Sample, n int) error {
	doc := Document{
		N:        n,
		Positive: toRaw(s.Positives()),
		Negative: toRaw(s.Negatives()),
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(&doc)
}

func toRaw(traces []trace.Trace) [][][]bool {
	out := make([][][]bool, len(traces))
	for i, tr := range traces {
		raw := make([][]bool, len(tr))
		for j, v := range tr {
			raw[j] = []bool(v)
		}
		out[i] = raw
	}
	return out
}
