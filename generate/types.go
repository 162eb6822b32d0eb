package generate

// Atoms is the set of propositional-variable indices formula generation is
// allowed to range over, typically sample.VarsUsed()'s result.
type Atoms []int
