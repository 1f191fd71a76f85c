// Package tapcalc implements the core of a keypad calculator.
//
// An expression is built one key at a time. Apply takes the current Sequence
// of tokens and an input Event and returns the next Sequence, keeping it well
// formed as it goes: pressing two operators in a row keeps only the last one,
// a second decimal point in a number is ignored, and a number left hanging on
// a point, like "5.", becomes "5.0" once an operator follows it.
//
// Evaluate reduces a Sequence to a single value in one left-to-right pass.
// Multiplication and division apply to the single term immediately before
// them, so "2+3*4" is 14 but there are no brackets, no exponents, and no
// unary minus. Division by zero is an error, never an infinity.
//
// Neither function keeps state between calls. Keypad is a small holder for
// the current sequence and the last result for callers that want one.
//
package tapcalc
