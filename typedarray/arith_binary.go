// SPDX-License-Identifier: MIT
// Package: typedarray
//
// Purpose:
//   - Elementwise binary operators (Plus, Minus, Times, Over) against an
//     equal-length array or a broadcast scalar, each returning a new array
//     whose kind is picked by the promotion rules below.
//
// Result kind (first match wins):
//  1. any Text    → Text for Plus (string concatenation); rejected otherwise
//  2. any Char    → rejected (ErrIncompatibleOperandKinds)
//  3. any Complex → Complex
//  4. any Decimal → Decimal
//  5. any floating kind → Float64
//  6. integral    → Int64 (Wide when either side is Wide), unless the
//     magnitude pre-check says the result could leave the int64 range, in
//     which case the whole result is computed as Float64.
//
// Division:
//   - integral Over truncates toward zero, also when the result is demoted
//     to Float64 (MinInt64 / -1); floating, Decimal and Complex Over are true
//     division. Integral and Decimal division by zero return
//     ErrDivisionByZero; floating and complex follow IEEE/complex128 rules.
package typedarray

import (
	"fmt"
	"math"
	"math/bits"
)

type binaryOp uint8

const (
	binPlus binaryOp = iota
	binMinus
	binTimes
	binOver
)

func (op binaryOp) name() string {
	switch op {
	case binPlus:
		return opPlus
	case binMinus:
		return opMinus
	case binTimes:
		return opTimes
	}
	return opOver
}

// describe renders the rejection message for receiver kind x and operand kind y,
// e.g. "a Char cannot be added to a Float64", "an Int64 cannot be divided by a Text".
func (op binaryOp) describe(x, y Kind) string {
	switch op {
	case binPlus:
		return fmt.Sprintf("%s %s cannot be added to %s %s", y.article(), y, x.article(), x)
	case binMinus:
		return fmt.Sprintf("%s %s cannot be subtracted from %s %s", y.article(), y, x.article(), x)
	case binTimes:
		return fmt.Sprintf("%s %s cannot be multiplied by %s %s", x.article(), x, y.article(), y)
	}
	return fmt.Sprintf("%s %s cannot be divided by %s %s", x.article(), x, y.article(), y)
}

// binaryKind picks the result kind for receiver kind x and operand kind y.
func binaryKind(op binaryOp, x, y Kind) (Kind, error) {
	reject := func() (Kind, error) {
		return Unsupported, kindErrorf(op.name(), ErrIncompatibleOperandKinds, "%s", op.describe(x, y))
	}
	switch {
	case x == Unsupported || y == Unsupported:
		return reject()
	case x == Text || y == Text:
		if op == binPlus {
			return Text, nil
		}
		return reject()
	case x == Char || y == Char:
		return reject()
	case x == Complex || y == Complex:
		return Complex, nil
	case x == Decimal || y == Decimal:
		return Decimal, nil
	case x.IsFloating() || y.IsFloating():
		return Float64, nil
	case x == Wide || y == Wide:
		return Wide, nil
	}
	return Int64, nil
}

// integralSafe reports whether op over two integral arrays cannot leave the
// int64 range, judged from the maximum magnitudes of both operands (read
// through their Max/Min caches).
func integralSafe(op binaryOp, a, b *Array) bool {
	ma, mb := a.magnitude(), b.magnitude()
	switch op {
	case binPlus, binMinus:
		return ma <= math.MaxInt64 && mb <= math.MaxInt64-ma
	case binTimes:
		hi, lo := bits.Mul64(ma, mb)
		return hi == 0 && lo <= math.MaxInt64
	}
	// Over: only MinInt64 / -1 escapes the range.
	for i := 0; i < a.n; i++ {
		if a.data.i[i] == math.MinInt64 && b.data.i[i] == -1 {
			return false
		}
	}
	return true
}

// Plus returns a + b elementwise (Text operands concatenate).
func (a *Array) Plus(b *Array) (*Array, error) { return a.binary(binPlus, b) }

// Minus returns a - b elementwise.
func (a *Array) Minus(b *Array) (*Array, error) { return a.binary(binMinus, b) }

// Times returns a * b elementwise.
func (a *Array) Times(b *Array) (*Array, error) { return a.binary(binTimes, b) }

// Over returns a / b elementwise.
func (a *Array) Over(b *Array) (*Array, error) { return a.binary(binOver, b) }

// PlusScalar returns a + s for every element.
func (a *Array) PlusScalar(s Scalar) (*Array, error) { return a.binaryScalar(binPlus, s) }

// MinusScalar returns a - s for every element.
func (a *Array) MinusScalar(s Scalar) (*Array, error) { return a.binaryScalar(binMinus, s) }

// TimesScalar returns a * s for every element.
func (a *Array) TimesScalar(s Scalar) (*Array, error) { return a.binaryScalar(binTimes, s) }

// OverScalar returns a / s for every element.
func (a *Array) OverScalar(s Scalar) (*Array, error) { return a.binaryScalar(binOver, s) }

// binaryScalar broadcasts s to a.Len() elements and defers to binary.
func (a *Array) binaryScalar(op binaryOp, s Scalar) (*Array, error) {
	if s.kind == Unsupported {
		return nil, kindErrorf(op.name(), ErrIncompatibleOperandKinds, "%s", op.describe(a.kind, s.kind))
	}
	b := newArray(s.kind, a.n, a.opts)
	for i := 0; i < a.n; i++ {
		b.set(i, s)
	}
	return a.binary(op, b)
}

// binary is the shared elementwise kernel.
// Implementation:
//   - Stage 1: validate operand presence and equal length.
//   - Stage 2: pick the result kind; demote integral results to Float64 when
//     the magnitude pre-check fails.
//   - Stage 3: convert both operands into the result kind.
//   - Stage 4: apply the operator per storage class into a fresh array.
//
// Complexity: O(n) time and space.
func (a *Array) binary(op binaryOp, b *Array) (*Array, error) {
	name := op.name()
	if b == nil {
		return nil, arrayErrorf(name, ErrNilArray)
	}
	if a.n != b.n {
		return nil, kindErrorf(name, ErrLengthMismatch, "lengths %d and %d", a.n, b.n)
	}
	rk, err := binaryKind(op, a.kind, b.kind)
	if err != nil {
		return nil, err
	}
	demoted := rk.IsIntegral() && !integralSafe(op, a, b)
	if demoted {
		rk = Float64
	}

	x, err := a.as(name, rk)
	if err != nil {
		return nil, err
	}
	y, err := b.as(name, rk)
	if err != nil {
		return nil, err
	}

	out := newArray(rk, a.n, a.opts)
	switch rk.storageClass() {
	case classText:
		for i := range out.data.s {
			out.data.s[i] = x.data.s[i] + y.data.s[i]
		}
	case classFloat:
		for i := range out.data.f {
			if demoted && op == binOver {
				// Integral quotients keep truncating after demotion.
				if y.data.f[i] == 0 {
					return nil, kindErrorf(name, ErrDivisionByZero, "element %d", i)
				}
				out.data.f[i] = math.Trunc(x.data.f[i] / y.data.f[i])
				continue
			}
			out.data.f[i] = applyFloat(op, x.data.f[i], y.data.f[i])
		}
	case classComplex:
		for i := range out.data.c {
			out.data.c[i] = applyComplex(op, x.data.c[i], y.data.c[i])
		}
	case classInt:
		for i := range out.data.i {
			p, q := x.data.i[i], y.data.i[i]
			if op == binOver && q == 0 {
				return nil, kindErrorf(name, ErrDivisionByZero, "element %d", i)
			}
			out.data.i[i] = applyInt(op, p, q)
		}
	case classDecimal:
		for i := range out.data.d {
			p, q := x.data.d[i], y.data.d[i]
			switch op {
			case binPlus:
				out.data.d[i] = p.Add(q)
			case binMinus:
				out.data.d[i] = p.Sub(q)
			case binTimes:
				out.data.d[i] = p.Mul(q)
			default:
				if q.IsZero() {
					return nil, kindErrorf(name, ErrDivisionByZero, "element %d", i)
				}
				out.data.d[i] = p.Div(q)
			}
		}
	}
	return out, nil
}

func applyFloat(op binaryOp, p, q float64) float64 {
	switch op {
	case binPlus:
		return p + q
	case binMinus:
		return p - q
	case binTimes:
		return p * q
	}
	return p / q
}

func applyComplex(op binaryOp, p, q complex128) complex128 {
	switch op {
	case binPlus:
		return p + q
	case binMinus:
		return p - q
	case binTimes:
		return p * q
	}
	return p / q
}

// applyInt assumes integralSafe already held and q != 0 for Over.
func applyInt(op binaryOp, p, q int64) int64 {
	switch op {
	case binPlus:
		return p + q
	case binMinus:
		return p - q
	case binTimes:
		return p * q
	}
	return p / q
}
