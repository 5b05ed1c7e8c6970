// SPDX-License-Identifier: MIT

package typedarray

import (
	"strconv"
	"strings"
)

// kindPrefixes maps token prefixes to the kind they force.
var kindPrefixes = map[string]Kind{
	"f64":  Float64,
	"f32":  Float32,
	"i64":  Int64,
	"i32":  Int32,
	"i16":  Int16,
	"i8":   Int8,
	"dec":  Decimal,
	"wide": Wide,
	"c":    Complex,
	"ch":   Char,
	"s":    Text,
}

// ParseScalar parses a textual token into a Scalar.
//
// A token "<prefix>:<value>" forces a kind: f64, f32, i64, i32, i16, i8, dec,
// wide, c (complex), ch (char), s (text). The value is converted with the
// conversion engine rules, so "i8:300" is rejected while "i8:12" is not.
// A bare token is an Int64 when it parses as a base-10 integer, a Float64 when
// it parses as a float, a Complex when it parses as a complex number, and Text
// otherwise.
//
// Errors: ErrUnsupportedKindConversion (unparsable or out-of-range value),
// ErrIncompatibleOperandKinds (a ch: value that is not one character).
func ParseScalar(token string) (Scalar, error) {
	if prefix, value, ok := strings.Cut(token, ":"); ok {
		if k, known := kindPrefixes[prefix]; known {
			return parseAs(TextValue(value), k)
		}
	}
	t := strings.TrimSpace(token)
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return Int64Value(i), nil
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return Float64Value(f), nil
	}
	if c, err := strconv.ParseComplex(t, 128); err == nil {
		return ComplexValue(c), nil
	}
	return TextValue(token), nil
}

// parseAs converts text into k and rejects lossy results.
func parseAs(text Scalar, k Kind) (Scalar, error) {
	if k == Text {
		return text, nil
	}
	v, lossy, err := convertScalar(text, k)
	if err != nil {
		return Scalar{}, arrayErrorf(opParseScalar, err)
	}
	if lossy {
		return Scalar{}, kindErrorf(opParseScalar, ErrUnsupportedKindConversion,
			"%q does not fit %s", text.s, k)
	}
	return v, nil
}

// ParseScalars parses every token with ParseScalar.
func ParseScalars(tokens []string) ([]Scalar, error) {
	out := make([]Scalar, len(tokens))
	for i, t := range tokens {
		s, err := ParseScalar(t)
		if err != nil {
			return nil, kindErrorf(opParseScalar, err, "token %d", i)
		}
		out[i] = s
	}
	return out, nil
}
