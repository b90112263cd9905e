// Package scan implements single-pass numeric literal scanning over an
// indexable character sequence. A literal is an optional sign, an
// optionally radix-prefixed digit run, and (for floating-point
// targets) an optional fraction and exponent. Scanning never
// backtracks and never allocates; anomalous input degrades silently to
// a best-effort value.
package scan

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number constrains the evaluation target to arithmetic types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Source constrains the input to indexable byte sequences.
type Source interface {
	~string | ~[]byte
}

// Sign is the resolved sign of a literal.
type Sign int8

const (
	SignNegative Sign = -1
	SignNone     Sign = 0
	SignPositive Sign = 1
)

// Config selects which literal forms Literal recognizes and bounds how
// many characters it may consume.
type Config struct {
	Sign     bool
	Float    bool
	Hex      bool
	Binary   bool
	Exponent bool

	// MaxLength caps the number of characters consumed; Unbounded
	// disables the cap. CountSignAndPrefix makes the sign and radix
	// prefix characters eat into the same budget as the digits.
	MaxLength          int
	CountSignAndPrefix bool
}

// SignOf returns the sign denoted by the character at i, or SignNone.
// The cursor is not advanced; callers consume the character themselves.
func SignOf[S Source](src S, i int) Sign {
	if i >= len(src) {
		return SignNone
	}
	switch src[i] {
	case '-':
		return SignNegative
	case '+':
		return SignPositive
	default:
		return SignNone
	}
}

// HasSign reports whether the character at i is a sign character.
func HasSign[S Source](src S, i int) bool {
	return SignOf(src, i) != SignNone
}

// HasHexPrefix reports whether a "0x"/"0X" marker starts at i.
// The one-character lookahead is bounds-guarded, so a trailing "0"
// never reads past the input.
func HasHexPrefix[S Source](src S, i int) bool {
	return i+1 < len(src) && src[i] == '0' && (src[i+1] == 'x' || src[i+1] == 'X')
}

// HasBinaryPrefix reports whether a "0b"/"0B" marker starts at i.
func HasBinaryPrefix[S Source](src S, i int) bool {
	return i+1 < len(src) && src[i] == '0' && (src[i+1] == 'b' || src[i+1] == 'B')
}

// isFloat reports whether T is a floating-point type. Integer division
// truncates the half to zero.
func isFloat[T Number]() bool {
	return T(1)/T(2) != 0
}

// scanDecimal folds a run of decimal digits into acc. Only strict
// decimal digits are accepted; hexadecimal letters end the run.
func scanDecimal[T Number, S Source](src S, st *state, acc T) T {
	st.beginStage()
	for st.pos < len(src) && IsDecimal(src[st.pos]) && st.within() {
		acc = acc*10 + T(DecimalValue(src[st.pos]))
		st.advance()
	}
	return acc
}

// scanHex folds a run of hexadecimal digits into acc. For
// floating-point targets the digits are consumed but not accumulated;
// hex literals carry no value there.
func scanHex[T Number, S Source](src S, st *state, acc T) T {
	st.beginStage()
	if isFloat[T]() {
		for st.pos < len(src) && IsHex(src[st.pos]) && st.within() {
			st.advance()
		}
		return acc
	}
	for st.pos < len(src) && IsHex(src[st.pos]) && st.within() {
		acc = acc*16 + T(HexValue(src[st.pos]))
		st.advance()
	}
	return acc
}

// scanBinary folds a run of binary digits into acc, with the same
// consume-only behavior as scanHex for floating-point targets.
func scanBinary[T Number, S Source](src S, st *state, acc T) T {
	st.beginStage()
	if isFloat[T]() {
		for st.pos < len(src) && IsBinary(src[st.pos]) && st.within() {
			st.advance()
		}
		return acc
	}
	for st.pos < len(src) && IsBinary(src[st.pos]) && st.within() {
		acc = acc*2 + T(BinaryValue(src[st.pos]))
		st.advance()
	}
	return acc
}

// scanFraction accumulates fractional digits after a consumed '.',
// each at a tenfold smaller place value. Single pass; the shrinking
// multiplier costs a little precision versus a late power-of-ten
// multiply.
func scanFraction[T Number, S Source](src S, st *state, acc T) T {
	st.beginStage()
	place := T(1) / T(10)
	for st.pos < len(src) && IsDecimal(src[st.pos]) && st.within() {
		acc += T(DecimalValue(src[st.pos])) * place
		place /= T(10)
		st.advance()
	}
	return acc
}

// scanExponent applies an optional e/E exponent to acc. The marker and
// the exponent sign are consumed outside the budget gate; only the
// digit run is gated. Extreme exponents saturate to infinity or zero.
func scanExponent[T Number, S Source](src S, st *state, acc T) T {
	st.beginStage()
	if st.pos >= len(src) || (src[st.pos] != 'e' && src[st.pos] != 'E') {
		return acc
	}
	st.advance()

	expSign := SignPositive
	if st.pos < len(src) {
		switch src[st.pos] {
		case '-':
			expSign = SignNegative
			st.advance()
		case '+':
			st.advance()
		}
	}

	exponent := 0
	for st.pos < len(src) && IsDecimal(src[st.pos]) && st.within() {
		exponent = exponent*10 + int(DecimalValue(src[st.pos]))
		st.advance()
	}
	return acc * T(math.Pow(10, float64(int(expSign)*exponent)))
}

// Literal evaluates the longest literal prefix of src under cfg and
// returns its value in T. The stages run in fixed order: sign, radix
// dispatch, fraction, exponent, sign application. Disabling a toggle
// suppresses exactly that stage; with hex disabled, "0x1A" scans as
// the decimal 0 and stops at the 'x'. Integer accumulation wraps per
// T's native width.
func Literal[T Number, S Source](src S, cfg Config) T {
	st := &state{max: cfg.MaxLength, countFixed: cfg.CountSignAndPrefix}

	var acc T
	sign := SignPositive

	if cfg.Sign {
		if s := SignOf(src, st.pos); s != SignNone {
			sign = s
			st.skip(1)
		}
	}

	switch {
	case cfg.Binary && HasBinaryPrefix(src, st.pos):
		st.skip(2)
		acc = scanBinary(src, st, acc)
	case cfg.Hex && HasHexPrefix(src, st.pos):
		st.skip(2)
		acc = scanHex(src, st, acc)
	default:
		acc = scanDecimal(src, st, acc)
	}

	if isFloat[T]() && cfg.Float && st.pos < len(src) && src[st.pos] == '.' && cfg.MaxLength > st.pos {
		st.skip(1)
		acc = scanFraction(src, st, acc)
	}

	if isFloat[T]() && cfg.Float && cfg.Exponent {
		acc = scanExponent(src, st, acc)
	}

	if cfg.Sign {
		// For unsigned T the negative sign converts by wrapping,
		// matching native unsigned multiply semantics.
		return acc * T(sign)
	}
	return acc
}
