// SPDX-License-Identifier: MIT
// Package: typedarray
//
// Purpose:
//   - The aggregate cache: Max/Min (+ indices), Sum and Product computed at most
//     once per Array instance, on first demand, and never inherited by derived
//     arrays.
//
// Natural views:
//   - floating kinds → float64; integral kinds (incl. Wide) → int64;
//     Decimal → decimal; Complex → complex128 (Max/Min ordered by modulus);
//     Char → code point (Max/Min only).
//   - Text has no natural numeric view: every aggregate fails with
//     ErrUnsupportedKindConversion. Char Sum/Product fail the same way.
//
// Overflow fallback:
//   - Integral Sum/Product accumulate in int64 with an exact pre-check before
//     each step. On the first step that would leave the int64 range the
//     integral accumulation is discarded, the whole aggregate is recomputed on
//     the float64 view and Total.DemotedToFloat is set.
//
// Determinism:
//   - Max/Min replace the champion only on strict >/<, so the earliest index
//     wins ties. MaxIndex/MinIndex depend on this.
package typedarray

import (
	"math"
	"sync"

	"github.com/shopspring/decimal"
)

// Total is the result of Sum or Product.
//   - Value: Float64 for floating kinds or after demotion, Int64 for integral
//     kinds, Decimal for Decimal, Complex for Complex.
//   - DemotedToFloat: true when integral accumulation overflowed and Value was
//     recomputed on the Float64 view.
type Total struct {
	Value          Scalar
	DemotedToFloat bool
}

// aggregates is the per-instance lazy cache. Each group is filled once.
type aggregates struct {
	extOnce        sync.Once
	max, min       Scalar
	maxIdx, minIdx int
	extErr         error

	sumOnce sync.Once
	sum     Total
	sumErr  error

	prodOnce sync.Once
	prod     Total
	prodErr  error
}

// extremes fills and returns the cached Max/Min group.
func (a *Array) extremes() error {
	a.agg.extOnce.Do(func() {
		a.agg.extErr = a.scanExtremes()
	})
	return a.agg.extErr
}

// scanExtremes performs the single linear pass.
func (a *Array) scanExtremes() error {
	if err := a.checkAggregable("extremes", true); err != nil {
		return err
	}
	maxI, minI := 0, 0
	for i := 1; i < a.n; i++ {
		if a.cmp(i, maxI) > 0 {
			maxI = i
		}
		if a.cmp(i, minI) < 0 {
			minI = i
		}
	}
	a.agg.maxIdx, a.agg.minIdx = maxI, minI
	a.agg.max, a.agg.min = a.elem(maxI), a.elem(minI)
	return nil
}

// checkAggregable rejects empty arrays and kinds without a numeric view.
// allowChar admits Char (ordering only).
func (a *Array) checkAggregable(op string, allowChar bool) error {
	if a.kind == Text || (a.kind == Char && !allowChar) {
		return kindErrorf(op, ErrUnsupportedKindConversion, "%s has no numerical view", a.kind)
	}
	if a.n == 0 {
		return kindErrorf(op, ErrIndexOutOfRange, "empty %s array", a.kind)
	}
	return nil
}

// Max returns the largest element (first occurrence on ties).
func (a *Array) Max() (Scalar, error) {
	if err := a.extremes(); err != nil {
		return Scalar{}, arrayErrorf(opMax, err)
	}
	return a.agg.max, nil
}

// Min returns the smallest element (first occurrence on ties).
func (a *Array) Min() (Scalar, error) {
	if err := a.extremes(); err != nil {
		return Scalar{}, arrayErrorf(opMin, err)
	}
	return a.agg.min, nil
}

// MaxIndex returns the index of Max.
func (a *Array) MaxIndex() (int, error) {
	if err := a.extremes(); err != nil {
		return -1, arrayErrorf(opMax, err)
	}
	return a.agg.maxIdx, nil
}

// MinIndex returns the index of Min.
func (a *Array) MinIndex() (int, error) {
	if err := a.extremes(); err != nil {
		return -1, arrayErrorf(opMin, err)
	}
	return a.agg.minIdx, nil
}

// Sum returns the cached sum of all elements.
func (a *Array) Sum() (Total, error) {
	a.agg.sumOnce.Do(func() {
		a.agg.sum, a.agg.sumErr = a.accumulate(opSum)
	})
	return a.agg.sum, a.agg.sumErr
}

// Product returns the cached product of all elements.
func (a *Array) Product() (Total, error) {
	a.agg.prodOnce.Do(func() {
		a.agg.prod, a.agg.prodErr = a.accumulate(opProduct)
	})
	return a.agg.prod, a.agg.prodErr
}

// accumulate computes Sum (op == opSum) or Product over the natural view.
// Implementation:
//   - Stage 1: reject empty arrays, Text and Char.
//   - Stage 2: dispatch on the storage class.
//   - Stage 3 (integral only): on detected overflow, recompute on float64.
func (a *Array) accumulate(op string) (Total, error) {
	if err := a.checkAggregable(op, false); err != nil {
		return Total{}, err
	}
	sum := op == opSum
	switch a.kind.storageClass() {
	case classFloat:
		return Total{Value: Float64Value(foldFloat(a.data.f, sum))}, nil
	case classInt:
		if v, ok := foldInt(a.data.i, sum); ok {
			return Total{Value: Int64Value(v)}, nil
		}
		fs := make([]float64, a.n)
		for i, v := range a.data.i {
			fs[i] = float64(v)
		}
		return Total{Value: Float64Value(foldFloat(fs, sum)), DemotedToFloat: true}, nil
	case classDecimal:
		acc := decimal.NewFromInt(1)
		if sum {
			acc = decimal.Zero
		}
		for _, d := range a.data.d {
			if sum {
				acc = acc.Add(d)
			} else {
				acc = acc.Mul(d)
			}
		}
		return Total{Value: DecimalValue(acc)}, nil
	case classComplex:
		acc := complex(1, 0)
		if sum {
			acc = 0
		}
		for _, c := range a.data.c {
			if sum {
				acc += c
			} else {
				acc *= c
			}
		}
		return Total{Value: ComplexValue(acc)}, nil
	}
	return Total{}, kindErrorf(op, ErrUnsupportedKindConversion, "%s has no numerical view", a.kind)
}

func foldFloat(vs []float64, sum bool) float64 {
	acc := 1.0
	if sum {
		acc = 0
	}
	for _, v := range vs {
		if sum {
			acc += v
		} else {
			acc *= v
		}
	}
	return acc
}

// foldInt accumulates in int64; ok=false as soon as a step would overflow.
func foldInt(vs []int64, sum bool) (int64, bool) {
	var acc int64 = 1
	if sum {
		acc = 0
	}
	var ok bool
	for _, v := range vs {
		if sum {
			acc, ok = checkedAdd(acc, v)
		} else {
			acc, ok = checkedMul(acc, v)
		}
		if !ok {
			return 0, false
		}
	}
	return acc, true
}

// checkedAdd returns x+y and whether it stayed inside the int64 range.
func checkedAdd(x, y int64) (int64, bool) {
	if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < math.MinInt64-y) {
		return 0, false
	}
	return x + y, true
}

// checkedMul returns x*y and whether it stayed inside the int64 range.
func checkedMul(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	p := x * y
	if p/y != x {
		return 0, false
	}
	return p, true
}

// Mean returns Sum divided by Len: Float64 for floating and integral kinds,
// Decimal for Decimal, Complex for Complex.
func (a *Array) Mean() (Scalar, error) {
	t, err := a.Sum()
	if err != nil {
		return Scalar{}, arrayErrorf(opMean, err)
	}
	n := float64(a.n)
	v := t.Value
	switch v.kind {
	case Float64:
		return Float64Value(v.f / n), nil
	case Int64:
		return Float64Value(float64(v.i) / n), nil
	case Decimal:
		return DecimalValue(v.d.Div(decimal.NewFromInt(int64(a.n)))), nil
	case Complex:
		return ComplexValue(v.c / complex(n, 0)), nil
	}
	return Scalar{}, kindErrorf(opMean, ErrUnsupportedKindConversion, "%s has no numerical view", a.kind)
}

// magnitude returns max |v| over an integral array, read through the
// Max/Min cache (filling it when needed). Empty arrays report 0.
func (a *Array) magnitude() uint64 {
	if a.n == 0 || !a.kind.IsIntegral() {
		return 0
	}
	if err := a.extremes(); err != nil {
		return 0
	}
	hi, lo := absU64(a.agg.max.i), absU64(a.agg.min.i)
	if lo > hi {
		return lo
	}
	return hi
}

// absU64 returns |v| without overflowing on MinInt64.
func absU64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
