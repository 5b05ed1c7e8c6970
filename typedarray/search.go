// SPDX-License-Identifier: MIT

package typedarray

import (
	"math"
	"math/cmplx"
)

// checkProbe enforces that the probe has exactly the array's kind.
// Comparable-but-different kinds are rejected rather than converted.
func (a *Array) checkProbe(op string, v Scalar) error {
	if v.kind != a.kind {
		return kindErrorf(op, ErrIncompatibleOperandKinds,
			"probe kind %s does not match array kind %s", v.kind, a.kind)
	}
	return nil
}

// IndexOf returns the first index whose element equals v, or -1.
// Errors: ErrIncompatibleOperandKinds when v.Kind() != Kind().
func (a *Array) IndexOf(v Scalar) (int, error) {
	if err := a.checkProbe(opIndexOf, v); err != nil {
		return -1, err
	}
	for i := 0; i < a.n; i++ {
		if a.elem(i).Equal(v) {
			return i, nil
		}
	}
	return -1, nil
}

// IndicesOf returns every index whose element equals v (empty when absent).
func (a *Array) IndicesOf(v Scalar) ([]int, error) {
	if err := a.checkProbe(opIndicesOf, v); err != nil {
		return nil, err
	}
	out := []int{}
	for i := 0; i < a.n; i++ {
		if a.elem(i).Equal(v) {
			out = append(out, i)
		}
	}
	return out, nil
}

// NearestIndex returns the index minimizing |a[i] - v|; the first index wins ties.
// Errors:
//   - ErrIncompatibleOperandKinds on probe kind mismatch.
//   - ErrUnsupportedOperation for Text (no distance is defined).
//   - ErrIndexOutOfRange for an empty array.
func (a *Array) NearestIndex(v Scalar) (int, error) {
	return a.nearest(opNearestIndex, v)
}

// NearestValue returns the element at NearestIndex(v).
func (a *Array) NearestValue(v Scalar) (Scalar, error) {
	i, err := a.nearest(opNearestValue, v)
	if err != nil {
		return Scalar{}, err
	}
	return a.elem(i), nil
}

func (a *Array) nearest(op string, v Scalar) (int, error) {
	if err := a.checkProbe(op, v); err != nil {
		return -1, err
	}
	if a.kind == Text {
		return -1, kindErrorf(op, ErrUnsupportedOperation, "no distance is defined for %s", a.kind)
	}
	if a.n == 0 {
		return -1, kindErrorf(op, ErrIndexOutOfRange, "empty %s array", a.kind)
	}
	best := 0
	switch a.kind.storageClass() {
	case classDecimal:
		bestD := a.data.d[0].Sub(v.d).Abs()
		for i := 1; i < a.n; i++ {
			if d := a.data.d[i].Sub(v.d).Abs(); d.LessThan(bestD) {
				best, bestD = i, d
			}
		}
		return best, nil
	case classInt:
		bestU := absDiff(a.data.i[0], v.i)
		for i := 1; i < a.n; i++ {
			if d := absDiff(a.data.i[i], v.i); d < bestU {
				best, bestU = i, d
			}
		}
		return best, nil
	}
	bestDist := a.distance(0, v)
	for i := 1; i < a.n; i++ {
		if d := a.distance(i, v); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}

// absDiff returns |x - y| exactly; uint64 holds every int64 difference.
func absDiff(x, y int64) uint64 {
	if x >= y {
		return uint64(x) - uint64(y)
	}
	return uint64(y) - uint64(x)
}

// distance returns |a[i] - v| for the float, complex and char classes.
func (a *Array) distance(i int, v Scalar) float64 {
	switch a.kind.storageClass() {
	case classFloat:
		return math.Abs(a.data.f[i] - v.f)
	case classComplex:
		return cmplx.Abs(a.data.c[i] - v.c)
	case classChar:
		return math.Abs(float64(a.data.r[i] - v.r))
	}
	return math.Inf(1)
}
