// SPDX-License-Identifier: MIT

package typedarray

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Array)(nil)
	_ fmt.Stringer = Scalar{}
	_ fmt.Stringer = Kind(0)
)

// FormatScalar renders s in its canonical decimal text form:
// shortest round-trip digits for floats (32-bit for Float32), base-10 for
// integers, decimal.String for Decimal, strconv.FormatComplex for Complex.
func FormatScalar(s Scalar) string {
	switch s.kind {
	case Float64:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	case Float32:
		return strconv.FormatFloat(s.f, 'g', -1, 32)
	case Int64, Int32, Int16, Int8, Wide:
		return strconv.FormatInt(s.i, 10)
	case Decimal:
		return s.d.String()
	case Complex:
		return strconv.FormatComplex(s.c, 'g', -1, 128)
	case Char:
		return string(s.r)
	case Text:
		return s.s
	}
	return fmt.Sprintf("%v", s.raw)
}

// String implements fmt.Stringer.
func (s Scalar) String() string { return FormatScalar(s) }

// String renders the array as "[e0, e1, ...]"; Text and Char elements are quoted.
func (a *Array) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < a.n; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		e := a.elem(i)
		switch a.kind {
		case Text:
			b.WriteString(strconv.Quote(e.s))
		case Char:
			b.WriteString(strconv.QuoteRune(e.r))
		default:
			b.WriteString(FormatScalar(e))
		}
	}
	b.WriteString(_fmtClose)
	return b.String()
}
