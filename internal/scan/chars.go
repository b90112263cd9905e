package scan

// IsDecimal reports whether c is a decimal digit.
func IsDecimal(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsLowerHex reports whether c is a lowercase hexadecimal digit letter.
func IsLowerHex(c byte) bool {
	return c >= 'a' && c <= 'f'
}

// IsUpperHex reports whether c is an uppercase hexadecimal digit letter.
func IsUpperHex(c byte) bool {
	return c >= 'A' && c <= 'F'
}

// IsHex reports whether c is a hexadecimal digit.
func IsHex(c byte) bool {
	return IsDecimal(c) || IsLowerHex(c) || IsUpperHex(c)
}

// IsBinary reports whether c is a binary digit.
func IsBinary(c byte) bool {
	return c == '0' || c == '1'
}

// DecimalValue returns the numeric value of a decimal digit.
// The caller must classify c first.
func DecimalValue(c byte) byte {
	return c - '0'
}

// LowerHexValue returns the numeric value of a lowercase hexadecimal digit letter.
// The caller must classify c first.
func LowerHexValue(c byte) byte {
	return c - 'a' + 10
}

// UpperHexValue returns the numeric value of an uppercase hexadecimal digit letter.
// The caller must classify c first.
func UpperHexValue(c byte) byte {
	return c - 'A' + 10
}

// HexValue returns the numeric value of a hexadecimal digit, or 0
// when c is not one.
func HexValue(c byte) byte {
	switch {
	case IsDecimal(c):
		return DecimalValue(c)
	case IsLowerHex(c):
		return LowerHexValue(c)
	case IsUpperHex(c):
		return UpperHexValue(c)
	default:
		return 0
	}
}

// BinaryValue returns the numeric value of a binary digit, or 0 when c
// is not one.
func BinaryValue(c byte) byte {
	if IsBinary(c) {
		return DecimalValue(c)
	}
	return 0
}

// AnyDigitValue returns the numeric value of c in whichever digit class
// it belongs to, or 0 for characters outside every class. Intended for
// callers that have not yet settled on a literal kind.
func AnyDigitValue(c byte) byte {
	switch {
	case IsDecimal(c):
		return DecimalValue(c)
	case IsLowerHex(c):
		return LowerHexValue(c)
	case IsUpperHex(c):
		return UpperHexValue(c)
	default:
		return 0
	}
}
