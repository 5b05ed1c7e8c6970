// SPDX-License-Identifier: MIT
// Package: typedarray
//
// Purpose:
//   - Elementwise unary operators. Every operator returns a new array and
//     rejects Text and Char receivers with ErrIncompatibleOperandKinds.
//
// Result kinds:
//   - Sqrt, Log, Log2, Log10, Exp: Float64 for real kinds, Complex for Complex.
//   - Invert: Float64 for floating/integral, Decimal for Decimal, Complex for Complex.
//   - Negate, Abs: Int64 (Wide stays Wide) for integral kinds, falling back to
//     Float64 when MinInt64 is present; Float64 for floating; Decimal stays
//     Decimal; Complex Negate stays Complex, Complex Abs is the Float64 modulus.
//   - Pow(n): integral stays integral for whole n ≥ 0 (Float64 on overflow);
//     Decimal stays Decimal for whole n; otherwise Float64 / Complex.
//   - Floor, Ceiling, Round, Truncate: value-preserving on integral kinds,
//     widened like Negate (Int64, Wide stays Wide); Float64 for floating;
//     Decimal and Complex (per component) keep their kind.
package typedarray

import (
	"math"
	"math/cmplx"

	"github.com/shopspring/decimal"
)

// checkNumeric rejects receivers that do not support arithmetic.
func (a *Array) checkNumeric(op string) error {
	if !a.kind.IsNumeric() {
		return kindErrorf(op, ErrIncompatibleOperandKinds, "%s %s has no %s", a.kind.article(), a.kind, op)
	}
	return nil
}

// integralKind is the result kind of every integral unary operation that
// stays integral (Negate, Abs, Pow, the rounding family).
func integralKind(k Kind) Kind {
	if k == Wide {
		return Wide
	}
	return Int64
}

// mapReal applies f over the Float64 view, or cf over Complex elements.
func (a *Array) mapReal(op string, f func(float64) float64, cf func(complex128) complex128) (*Array, error) {
	if err := a.checkNumeric(op); err != nil {
		return nil, err
	}
	if a.kind == Complex {
		out := newArray(Complex, a.n, a.opts)
		for i, c := range a.data.c {
			out.data.c[i] = cf(c)
		}
		return out, nil
	}
	x, err := a.as(op, Float64)
	if err != nil {
		return nil, err
	}
	for i, v := range x.data.f {
		x.data.f[i] = f(v)
	}
	x.origin = nil
	return x, nil
}

// Sqrt returns the elementwise square root.
func (a *Array) Sqrt() (*Array, error) { return a.mapReal(opSqrt, math.Sqrt, cmplx.Sqrt) }

// Log returns the elementwise natural logarithm.
func (a *Array) Log() (*Array, error) { return a.mapReal(opLog, math.Log, cmplx.Log) }

// Log2 returns the elementwise base-2 logarithm.
func (a *Array) Log2() (*Array, error) {
	return a.mapReal(opLog2, math.Log2, func(c complex128) complex128 {
		return cmplx.Log(c) / complex(math.Ln2, 0)
	})
}

// Log10 returns the elementwise base-10 logarithm.
func (a *Array) Log10() (*Array, error) { return a.mapReal(opLog10, math.Log10, cmplx.Log10) }

// Exp returns e raised to each element.
func (a *Array) Exp() (*Array, error) { return a.mapReal(opExp, math.Exp, cmplx.Exp) }

// Invert returns 1/x for every element.
// Errors: ErrDivisionByZero for a zero Decimal element.
func (a *Array) Invert() (*Array, error) {
	if a.kind == Decimal {
		one := decimal.NewFromInt(1)
		return a.mapDecimal(opInvert, func(d decimal.Decimal) (decimal.Decimal, error) {
			if d.IsZero() {
				return d, ErrDivisionByZero
			}
			return one.Div(d), nil
		})
	}
	return a.mapReal(opInvert,
		func(v float64) float64 { return 1 / v },
		func(c complex128) complex128 { return 1 / c })
}

// mapDecimal applies f over Decimal elements.
func (a *Array) mapDecimal(op string, f func(decimal.Decimal) (decimal.Decimal, error)) (*Array, error) {
	out := newArray(Decimal, a.n, a.opts)
	for i, d := range a.data.d {
		v, err := f(d)
		if err != nil {
			return nil, kindErrorf(op, err, "element %d", i)
		}
		out.data.d[i] = v
	}
	return out, nil
}

// mapInt applies f over integral elements into kind k.
func (a *Array) mapInt(k Kind, f func(int64) int64) *Array {
	out := newArray(k, a.n, a.opts)
	for i, v := range a.data.i {
		out.data.i[i] = f(v)
	}
	return out
}

// Negate returns -x for every element.
func (a *Array) Negate() (*Array, error) {
	switch {
	case a.kind == Decimal:
		return a.mapDecimal(opNegate, func(d decimal.Decimal) (decimal.Decimal, error) { return d.Neg(), nil })
	case a.kind.IsIntegral() && a.magnitude() <= math.MaxInt64:
		return a.mapInt(integralKind(a.kind), func(v int64) int64 { return -v }), nil
	}
	return a.mapReal(opNegate,
		func(v float64) float64 { return -v },
		func(c complex128) complex128 { return -c })
}

// Abs returns |x| for every element (the modulus for Complex).
func (a *Array) Abs() (*Array, error) {
	switch {
	case a.kind == Decimal:
		return a.mapDecimal(opAbs, func(d decimal.Decimal) (decimal.Decimal, error) { return d.Abs(), nil })
	case a.kind == Complex:
		out := newArray(Float64, a.n, a.opts)
		for i, c := range a.data.c {
			out.data.f[i] = cmplx.Abs(c)
		}
		return out, nil
	case a.kind.IsIntegral() && a.magnitude() <= math.MaxInt64:
		return a.mapInt(integralKind(a.kind), func(v int64) int64 {
			if v < 0 {
				return -v
			}
			return v
		}), nil
	}
	return a.mapReal(opAbs, math.Abs, nil)
}

// Pow raises every element to the power n.
// Implementation:
//   - integral receiver and whole n ≥ 0: exact integer power; if any element
//     overflows, the whole result is recomputed as Float64.
//   - Decimal receiver and whole n: exact decimal power (negative n divides).
//   - otherwise: math.Pow over Float64, or cmplx.Pow for Complex.
func (a *Array) Pow(n float64) (*Array, error) {
	if err := a.checkNumeric(opPow); err != nil {
		return nil, err
	}
	whole := n == math.Trunc(n) && math.Abs(n) <= math.MaxInt32
	if a.kind.IsIntegral() && whole && n >= 0 {
		out := newArray(integralKind(a.kind), a.n, a.opts)
		ok := true
		for i, v := range a.data.i {
			if out.data.i[i], ok = intPow(v, int64(n)); !ok {
				break
			}
		}
		if ok {
			return out, nil
		}
	}
	if a.kind == Decimal && whole {
		e := int64(n)
		one := decimal.NewFromInt(1)
		return a.mapDecimal(opPow, func(d decimal.Decimal) (decimal.Decimal, error) {
			if e >= 0 {
				return decPow(d, e), nil
			}
			if d.IsZero() {
				return d, ErrDivisionByZero
			}
			return one.Div(decPow(d, -e)), nil
		})
	}
	cn := complex(n, 0)
	return a.mapReal(opPow,
		func(v float64) float64 { return math.Pow(v, n) },
		func(c complex128) complex128 { return cmplx.Pow(c, cn) })
}

// intPow computes base^e by squaring; ok=false on int64 overflow.
func intPow(base, e int64) (int64, bool) {
	result := int64(1)
	var ok bool
	for e > 0 {
		if e&1 == 1 {
			if result, ok = checkedMul(result, base); !ok {
				return 0, false
			}
		}
		e >>= 1
		if e > 0 {
			if base, ok = checkedMul(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// decPow computes d^e (e ≥ 0) by squaring.
func decPow(d decimal.Decimal, e int64) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(d)
		}
		e >>= 1
		if e > 0 {
			d = d.Mul(d)
		}
	}
	return result
}

// rounding applies a rounding-family operator.
func (a *Array) rounding(op string, f func(float64) float64, df func(decimal.Decimal) decimal.Decimal) (*Array, error) {
	if err := a.checkNumeric(op); err != nil {
		return nil, err
	}
	switch {
	case a.kind.IsIntegral():
		return a.mapInt(integralKind(a.kind), func(v int64) int64 { return v }), nil
	case a.kind == Decimal:
		return a.mapDecimal(op, func(d decimal.Decimal) (decimal.Decimal, error) { return df(d), nil })
	}
	return a.mapReal(op, f, func(c complex128) complex128 {
		return complex(f(real(c)), f(imag(c)))
	})
}

// Floor rounds every element toward -Inf.
func (a *Array) Floor() (*Array, error) {
	return a.rounding(opFloor, math.Floor, decimal.Decimal.Floor)
}

// Ceiling rounds every element toward +Inf.
func (a *Array) Ceiling() (*Array, error) {
	return a.rounding(opCeiling, math.Ceil, decimal.Decimal.Ceil)
}

// Round rounds every element to the nearest integer, half away from zero.
func (a *Array) Round() (*Array, error) {
	return a.rounding(opRound, math.Round, func(d decimal.Decimal) decimal.Decimal { return d.Round(0) })
}

// Truncate drops every digit after the given number of decimal places
// (toward zero). Errors: ErrUnsupportedOperation for decimals < 0.
func (a *Array) Truncate(decimals int) (*Array, error) {
	if decimals < 0 {
		return nil, kindErrorf(opTruncate, ErrUnsupportedOperation, "negative decimal places %d", decimals)
	}
	scale := math.Pow(10, float64(decimals))
	return a.rounding(opTruncate,
		func(v float64) float64 {
			if math.IsInf(v*scale, 0) {
				return v
			}
			return math.Trunc(v*scale) / scale
		},
		func(d decimal.Decimal) decimal.Decimal { return d.Truncate(int32(decimals)) })
}
