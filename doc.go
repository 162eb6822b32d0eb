// Package ltlsynth (module github.com/katalvlaran/ltlsynth) learns a
// minimal-size LTL formula consistent with a labeled sample of finite
// traces. This root package holds no code of its own — it only documents
// how the subpackages fit together.
//
// Packages:
//
//	ltl/      — the formula model: Kind, Formula, constructors, Eval-free
//	            structural helpers (Size, Equal, Less, Render)
//	trace/    — finite-trace valuations and formula evaluation
//	sample/   — positive/negative trace sets and consistency checking
//	ioformat/ — YAML (de)serialization of samples
//	skeleton/ — unlabeled formula-tree shape enumeration
//	generate/ — labels skeletons with operators and atoms, pruning
//	            provably redundant candidates
//	search/   — the size-stratified synthesis driver (serial below a
//	            threshold, worker-pool parallel above it)
//
// A command-line front end and a trace-generating sampler are deliberately
// not part of this module: both are named as external collaborators, out
// of scope for the synthesis core.
package ltlsynth
