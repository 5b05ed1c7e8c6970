// SPDX-License-Identifier: MIT

// Package typedarray: the closed scalar kind enumeration.
//
// Purpose:
//   - Name every element representation an Array can hold.
//   - Group kinds into storage classes so that conversions, aggregates and
//     arithmetic dispatch once per class instead of once per kind.
//
// Notes:
//   - Unsupported is the zero value on purpose: a Scalar built from an unknown
//     Go value is Unsupported and every promotion or conversion rejects it.
//   - Wide is a second 64-bit integer kind kept distinct from Int64 so that
//     provenance survives unification.
package typedarray

// Kind identifies the element representation of a Scalar or an Array.
type Kind uint8

// The closed kind set.
const (
	Unsupported Kind = iota // sentinel; always rejected
	Float64
	Float32
	Int64
	Int32
	Int16
	Int8
	Decimal // arbitrary-precision decimal (shopspring/decimal)
	Wide    // 64-bit integer, distinct from Int64 for provenance
	Complex
	Char
	Text
)

var kindNames = [...]string{
	Unsupported: "Unsupported",
	Float64:     "Float64",
	Float32:     "Float32",
	Int64:       "Int64",
	Int32:       "Int32",
	Int16:       "Int16",
	Int8:        "Int8",
	Decimal:     "Decimal",
	Wide:        "Wide",
	Complex:     "Complex",
	Char:        "Char",
	Text:        "Text",
}

// String returns the kind name (e.g., "Int64").
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[Unsupported]
}

// IsFloating reports whether k is Float64 or Float32.
func (k Kind) IsFloating() bool { return k == Float64 || k == Float32 }

// IsIntegral reports whether k belongs to the integral family
// (Int64, Int32, Int16, Int8 or Wide).
func (k Kind) IsIntegral() bool {
	switch k {
	case Int64, Int32, Int16, Int8, Wide:
		return true
	}
	return false
}

// IsNumeric reports whether k supports arithmetic (floating, integral,
// Decimal or Complex).
func (k Kind) IsNumeric() bool {
	return k.IsFloating() || k.IsIntegral() || k == Decimal || k == Complex
}

// Kinds returns every representable kind except Unsupported, in declaration order.
func Kinds() []Kind {
	return []Kind{Float64, Float32, Int64, Int32, Int16, Int8, Decimal, Wide, Complex, Char, Text}
}

// class groups kinds that share one backing slice type.
type class uint8

const (
	classNone class = iota
	classFloat
	classInt
	classDecimal
	classComplex
	classChar
	classText
)

// storageClass maps a kind to the slice that holds its elements.
func (k Kind) storageClass() class {
	switch {
	case k.IsFloating():
		return classFloat
	case k.IsIntegral():
		return classInt
	}
	switch k {
	case Decimal:
		return classDecimal
	case Complex:
		return classComplex
	case Char:
		return classChar
	case Text:
		return classText
	}
	return classNone
}

// article returns the indefinite article used in operand error messages.
func (k Kind) article() string {
	switch k {
	case Int64, Int32, Int16, Int8, Unsupported:
		return "an"
	}
	return "a"
}
