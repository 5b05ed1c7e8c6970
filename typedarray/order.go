// SPDX-License-Identifier: MIT
// Package: typedarray
//
// Purpose:
//   - Ordering and permutation transforms. Each returns the new array plus the
//     permutation used: perm[i] is the source index of the element now at i.
//
// Ordering keys:
//   - floating/integral/Decimal: numeric order; Complex: modulus (the complex
//     values themselves are carried); Char: code point. Text has no order.
//
// Determinism:
//   - Sort is a selection sort that picks, at each step, the earliest original
//     occurrence of the minimum remaining value. The result is reproducible
//     and stable at O(n²) cost.
package typedarray

import (
	"math/cmplx"

	"github.com/katalvlaran/numarray/permute"
)

// Permuter supplies random permutations for Randomize.
// UniquePermutation must return a bijection on [0, n).
type Permuter interface {
	UniquePermutation(n int) []int
}

// cmp orders elements i and j of a: -1, 0 or +1.
// Incomparable floats (NaN) compare as equal. Text compares as equal;
// callers reject Text before ordering.
func (a *Array) cmp(i, j int) int {
	switch a.kind.storageClass() {
	case classFloat:
		return cmpOrdered(a.data.f[i], a.data.f[j])
	case classInt:
		return cmpOrdered(a.data.i[i], a.data.i[j])
	case classDecimal:
		return a.data.d[i].Cmp(a.data.d[j])
	case classComplex:
		return cmpOrdered(cmplx.Abs(a.data.c[i]), cmplx.Abs(a.data.c[j]))
	case classChar:
		return cmpOrdered(a.data.r[i], a.data.r[j])
	}
	return 0
}

func cmpOrdered[T ~float64 | ~int64 | ~int32](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Sort returns the elements in ascending order and the permutation used.
// Implementation:
//   - Stage 1: reject Text (ErrUnsupportedOperation).
//   - Stage 2: selection sort over the remaining positions; a later candidate
//     replaces the current minimum only when strictly smaller.
//   - Stage 3: gather the sorted array from the permutation.
//
// Complexity: O(n²) comparisons, O(n) extra space.
func (a *Array) Sort() (*Array, []int, error) {
	if a.kind == Text {
		return nil, nil, kindErrorf(opSort, ErrUnsupportedOperation, "no ordering is defined for %s", a.kind)
	}
	perm := make([]int, 0, a.n)
	used := make([]bool, a.n)
	for len(perm) < a.n {
		best := -1
		for j := 0; j < a.n; j++ {
			if used[j] {
				continue
			}
			if best < 0 || a.cmp(j, best) < 0 {
				best = j
			}
		}
		used[best] = true
		perm = append(perm, best)
	}
	return a.gather(perm), perm, nil
}

// SortBy reorders the array by an explicit index sequence: out[i] = a[perm[i]].
// The sequence is NOT required to be a bijection: duplicated indices are
// accepted and some elements may be dropped. Entries outside [0, Len()) are
// rejected because they cannot be read.
//
// Errors:
//   - ErrLengthMismatch when len(perm) != Len().
//   - ErrIndexOutOfRange for an entry outside [0, Len()).
func (a *Array) SortBy(perm []int) (*Array, error) {
	if len(perm) != a.n {
		return nil, kindErrorf(opSortBy, ErrLengthMismatch, "permutation length %d, array length %d", len(perm), a.n)
	}
	for i, p := range perm {
		if p < 0 || p >= a.n {
			return nil, kindErrorf(opSortBy, ErrIndexOutOfRange, "perm[%d] = %d, length %d", i, p, a.n)
		}
	}
	return a.gather(perm), nil
}

// Reverse returns the elements in reverse order and the permutation i ↦ n-1-i.
func (a *Array) Reverse() (*Array, []int) {
	perm := make([]int, a.n)
	for i := range perm {
		perm[i] = a.n - 1 - i
	}
	return a.gather(perm), perm
}

// Randomize shuffles the array with a permutation drawn from p.
// The permutation is verified to be a bijection before use. A nil p draws
// from permute.New(0), the fixed default stream.
//
// Errors:
//   - ErrLengthMismatch when p returns a sequence of the wrong length.
//   - ErrIndexOutOfRange when it repeats or leaves [0, Len()).
func (a *Array) Randomize(p Permuter) (*Array, []int, error) {
	if p == nil {
		p = permute.New(0)
	}
	perm := p.UniquePermutation(a.n)
	if len(perm) != a.n {
		return nil, nil, kindErrorf(opRandomize, ErrLengthMismatch, "permutation length %d, array length %d", len(perm), a.n)
	}
	seen := make([]bool, a.n)
	for i, j := range perm {
		if j < 0 || j >= a.n || seen[j] {
			return nil, nil, kindErrorf(opRandomize, ErrIndexOutOfRange, "perm[%d] = %d is not a bijection entry", i, j)
		}
		seen[j] = true
	}
	return a.gather(perm), perm, nil
}
