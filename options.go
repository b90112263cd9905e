package seval

import "github.com/jacoelho/seval/internal/scan"

// Options selects which literal forms the evaluators recognize. Each
// toggle suppresses exactly one scanning stage regardless of the
// input's content.
type Options struct {
	// Sign recognizes a leading '+' or '-', applied by multiplication
	// after scanning.
	Sign bool
	// Float recognizes a fractional part after '.' for floating-point
	// targets.
	Float bool
	// Hex recognizes the "0x"/"0X" prefix and hexadecimal digits.
	Hex bool
	// Binary recognizes the "0b"/"0B" prefix and binary digits.
	Binary bool
	// Exponent recognizes an e/E exponent for floating-point targets.
	// It has no effect with Float disabled.
	Exponent bool
}

// DefaultOptions returns options with every literal form enabled.
func DefaultOptions() Options {
	return Options{
		Sign:     true,
		Float:    true,
		Hex:      true,
		Binary:   true,
		Exponent: true,
	}
}

func (o Options) config(maxLength int, countSignAndPrefix bool) scan.Config {
	return scan.Config{
		Sign:               o.Sign,
		Float:              o.Float,
		Hex:                o.Hex,
		Binary:             o.Binary,
		Exponent:           o.Exponent,
		MaxLength:          maxLength,
		CountSignAndPrefix: countSignAndPrefix,
	}
}
