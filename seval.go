// Package seval evaluates numeric literals out of text without
// allocating and without a runtime error channel: each call returns
// the value of the longest valid literal prefix of its input, in the
// caller-chosen arithmetic type. Decimal, hexadecimal ("0x"/"0X") and
// binary ("0b"/"0B") integers are recognized, plus fractions and
// e/E exponents for floating-point targets. Trailing characters after
// the literal are ignored; input with no digits evaluates to zero.
package seval

import (
	"golang.org/x/exp/constraints"

	"github.com/jacoelho/seval/internal/scan"
)

// Number constrains the evaluation target to arithmetic types: the
// signed and unsigned integers of every width, and the floating-point
// types. Instantiating an evaluator with anything else fails to
// compile.
type Number interface {
	constraints.Integer | constraints.Float
}

// Source constrains the input to indexable byte sequences.
type Source interface {
	~string | ~[]byte
}

// Evaluate evaluates the longest numeric literal prefix of src with
// every literal form enabled.
//
// Integer accumulation wraps per T's native width; extreme exponents
// saturate to infinity or zero. Neither is reported.
func Evaluate[T Number, S Source](src S) T {
	return EvaluateWithOptions[T](src, DefaultOptions())
}

// EvaluateWithOptions evaluates the longest numeric literal prefix of
// src, recognizing only the literal forms opts enables.
func EvaluateWithOptions[T Number, S Source](src S, opts Options) T {
	return scan.Literal[T](src, opts.config(scan.Unbounded, true))
}

// EvaluateN is like Evaluate but consumes at most maxLength
// characters, with the sign and radix prefix counting against that
// budget. A negative maxLength means unbounded.
func EvaluateN[T Number, S Source](src S, maxLength int) T {
	return EvaluateNWithOptions[T](src, maxLength, true, DefaultOptions())
}

// EvaluateNWithOptions is the fully configurable bounded evaluator.
// When countSignAndPrefix is true the sign and radix prefix characters
// eat into the same budget as the digits; when false the budget
// restarts once digit scanning begins, so they are free. A negative
// maxLength means unbounded.
func EvaluateNWithOptions[T Number, S Source](src S, maxLength int, countSignAndPrefix bool, opts Options) T {
	if maxLength < 0 {
		maxLength = scan.Unbounded
	}
	return scan.Literal[T](src, opts.config(maxLength, countSignAndPrefix))
}
