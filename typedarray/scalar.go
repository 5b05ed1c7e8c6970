// SPDX-License-Identifier: MIT

package typedarray

import (
	"github.com/shopspring/decimal"
)

// Scalar is a single tagged value of one Kind.
// Only the field matching the kind's storage class is meaningful:
//   - f: Float64, Float32 (Float32 values are stored widened, exactly)
//   - i: Int64, Int32, Int16, Int8, Wide
//   - d: Decimal
//   - c: Complex
//   - r: Char
//   - s: Text
//   - raw: the original Go value of an Unsupported scalar
//
// Scalars are plain values; copying one copies it.
type Scalar struct {
	kind Kind
	f    float64
	i    int64
	d    decimal.Decimal
	c    complex128
	r    rune
	s    string
	raw  interface{}
}

// Float64Value returns a Float64 scalar.
func Float64Value(v float64) Scalar { return Scalar{kind: Float64, f: v} }

// Float32Value returns a Float32 scalar.
func Float32Value(v float32) Scalar { return Scalar{kind: Float32, f: float64(v)} }

// Int64Value returns an Int64 scalar.
func Int64Value(v int64) Scalar { return Scalar{kind: Int64, i: v} }

// Int32Value returns an Int32 scalar.
func Int32Value(v int32) Scalar { return Scalar{kind: Int32, i: int64(v)} }

// Int16Value returns an Int16 scalar.
func Int16Value(v int16) Scalar { return Scalar{kind: Int16, i: int64(v)} }

// Int8Value returns an Int8 scalar.
func Int8Value(v int8) Scalar { return Scalar{kind: Int8, i: int64(v)} }

// WideValue returns a Wide (64-bit, provenance-distinct) integer scalar.
func WideValue(v int64) Scalar { return Scalar{kind: Wide, i: v} }

// DecimalValue returns an arbitrary-precision Decimal scalar.
func DecimalValue(v decimal.Decimal) Scalar { return Scalar{kind: Decimal, d: v} }

// ComplexValue returns a Complex scalar.
func ComplexValue(v complex128) Scalar { return Scalar{kind: Complex, c: v} }

// CharValue returns a Char scalar.
func CharValue(v rune) Scalar { return Scalar{kind: Char, r: v} }

// TextValue returns a Text scalar.
func TextValue(v string) Scalar { return Scalar{kind: Text, s: v} }

// UnsupportedValue boxes a Go value outside the closed kind set.
// Any array construction that sees it fails with ErrUnrecognizedInputKind.
func UnsupportedValue(v interface{}) Scalar { return Scalar{kind: Unsupported, raw: v} }

// ScalarOf boxes a Go value into a Scalar.
// Mapping: float64, float32, int/int64, int32, int16, int8, decimal.Decimal,
// complex128/complex64, string, and Scalar itself (passed through).
// Note that rune is int32 in Go, so a bare rune maps to Int32; use CharValue
// for characters. Every other type maps to Unsupported.
func ScalarOf(v interface{}) Scalar {
	switch x := v.(type) {
	case Scalar:
		return x
	case float64:
		return Float64Value(x)
	case float32:
		return Float32Value(x)
	case int:
		return Int64Value(int64(x))
	case int64:
		return Int64Value(x)
	case int32:
		return Int32Value(x)
	case int16:
		return Int16Value(x)
	case int8:
		return Int8Value(x)
	case decimal.Decimal:
		return DecimalValue(x)
	case complex128:
		return ComplexValue(x)
	case complex64:
		return ComplexValue(complex128(x))
	case string:
		return TextValue(x)
	}
	return UnsupportedValue(v)
}

// Kind returns the scalar's kind.
func (s Scalar) Kind() Kind { return s.kind }

// Float returns the stored floating value (0 for non-floating kinds).
func (s Scalar) Float() float64 { return s.f }

// Int returns the stored integral value (0 for non-integral kinds).
func (s Scalar) Int() int64 { return s.i }

// Decimal returns the stored decimal value (zero for other kinds).
func (s Scalar) Decimal() decimal.Decimal { return s.d }

// Complex returns the stored complex value (0 for other kinds).
func (s Scalar) Complex() complex128 { return s.c }

// Char returns the stored rune (0 for other kinds).
func (s Scalar) Char() rune { return s.r }

// Text returns the stored string ("" for other kinds).
func (s Scalar) Text() string { return s.s }

// Raw returns the boxed Go value of an Unsupported scalar.
func (s Scalar) Raw() interface{} { return s.raw }

// As converts the scalar into kind k using the conversion engine rules.
func (s Scalar) As(k Kind) (Scalar, error) {
	out, _, err := convertScalar(s, k)
	if err != nil {
		return Scalar{}, arrayErrorf(opAs, err)
	}
	return out, nil
}

// Equal reports whether o has the same kind and the same value.
// Floating comparison is exact (NaN is never equal); decimals compare by value.
func (s Scalar) Equal(o Scalar) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind.storageClass() {
	case classFloat:
		return s.f == o.f
	case classInt:
		return s.i == o.i
	case classDecimal:
		return s.d.Equal(o.d)
	case classComplex:
		return s.c == o.c
	case classChar:
		return s.r == o.r
	case classText:
		return s.s == o.s
	}
	return false
}
