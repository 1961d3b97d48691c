// Package solid models numeric values whose precision is intrinsically
// limited by a named computational barrier: quantum uncertainty, energy
// cost, storage, time, raw computational cost, literal infinity,
// logical undefinedness — or none, for exact values.
//
// A value is a prefix of known digits, a gap of unknown magnitude, and
// a terminal describing behavior far beyond the prefix. The GGGX
// pipeline (Analyzer) derives this representation from a raw number and
// a desired precision; the arithmetic algebra (Add, Subtract, Multiply,
// Divide, Power) combines two such representations while propagating
// barriers, confidence, gap magnitude and terminal information,
// including the special algebra for infinities and logically-undefined
// results.
//
// Failures inside the algebra are values: dividing by zero returns an
// Undefined SolidValue carrying its reason and operands, never an error
// or a panic. Go errors appear only at host boundaries — the 64-byte
// interchange codec and literal construction from the parser's string
// pool.
package solid
