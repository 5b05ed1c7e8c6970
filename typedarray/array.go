// SPDX-License-Identifier: MIT

// Package typedarray - Array storage, constructors & safe accessors.
//
// Purpose:
//   - Hold one kind tag plus exactly one typed backing slice (per storage class).
//   - Guarantee immutability: constructors copy their input; every transform
//     allocates a new Array with a fresh, uncomputed aggregate cache.
//   - Keep the public surface safe: At/Slice return errors instead of panicking.
//
// Complexity quicksheet:
//   - New*: O(n) copy; At: O(1); Clone/Slice: O(n).
package typedarray

import (
	"unsafe"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Operation name constants for unified error wrapping.
const (
	opAs           = "As"
	opAt           = "At"
	opSlice        = "Slice"
	opView         = "View"
	opUnify        = "Unify"
	opResolve      = "Resolve"
	opMax          = "Max"
	opMin          = "Min"
	opSum          = "Sum"
	opProduct      = "Product"
	opMean         = "Mean"
	opPlus         = "Plus"
	opMinus        = "Minus"
	opTimes        = "Times"
	opOver         = "Over"
	opNegate       = "Negate"
	opAbs          = "Abs"
	opSqrt         = "Sqrt"
	opInvert       = "Invert"
	opLog          = "Log"
	opLog2         = "Log2"
	opLog10        = "Log10"
	opExp          = "Exp"
	opPow          = "Pow"
	opFloor        = "Floor"
	opCeiling      = "Ceiling"
	opRound        = "Round"
	opTruncate     = "Truncate"
	opSort         = "Sort"
	opSortBy       = "SortBy"
	opRandomize    = "Randomize"
	opIndexOf      = "IndexOf"
	opIndicesOf    = "IndicesOf"
	opNearestIndex = "NearestIndex"
	opNearestValue = "NearestValue"
	opConcatenate  = "Concatenate"
	opParseScalar  = "ParseScalar"
)

// storage holds the elements; only the slice matching the kind's class is non-nil.
type storage struct {
	f []float64 // Float64, Float32
	i []int64   // Int64, Int32, Int16, Int8, Wide
	d []decimal.Decimal
	c []complex128
	r []rune
	s []string
}

// Array is an immutable sequence of scalars unified into one Kind.
//   - kind: element kind (never Unsupported).
//   - n: element count; every backing slice in use has len == n.
//   - origin: pre-unification kind per element, or nil when not tracked.
//   - opts: configuration inherited by derived arrays.
//   - agg: lazily computed aggregates, owned by this instance only.
//
// Arrays must be used through *Array (the cache is not copyable).
type Array struct {
	kind   Kind
	n      int
	data   storage
	origin []Kind
	opts   Options
	agg    aggregates
}

// newArray allocates an empty Array of kind k with room for n elements.
func newArray(k Kind, n int, opts Options) *Array {
	a := &Array{kind: k, n: n, opts: opts}
	switch k.storageClass() {
	case classFloat:
		a.data.f = make([]float64, n)
	case classInt:
		a.data.i = make([]int64, n)
	case classDecimal:
		a.data.d = make([]decimal.Decimal, n)
	case classComplex:
		a.data.c = make([]complex128, n)
	case classChar:
		a.data.r = make([]rune, n)
	case classText:
		a.data.s = make([]string, n)
	}
	return a
}

// finish records homogeneous provenance when the options ask for it.
func (a *Array) finish() *Array {
	if a.opts.trackProvenance && a.origin == nil {
		a.origin = repeatKind(a.kind, a.n)
	}
	return a
}

func repeatKind(k Kind, n int) []Kind {
	out := make([]Kind, n)
	for i := range out {
		out[i] = k
	}
	return out
}

// ---------- Homogeneous constructors ----------

// NewFloat64 returns a Float64 array holding a copy of vals.
func NewFloat64(vals []float64, opts ...Option) *Array {
	a := newArray(Float64, len(vals), gatherOptions(opts...))
	copy(a.data.f, vals)
	return a.finish()
}

// NewFloat32 returns a Float32 array holding a copy of vals.
func NewFloat32(vals []float32, opts ...Option) *Array {
	a := newArray(Float32, len(vals), gatherOptions(opts...))
	for i, v := range vals {
		a.data.f[i] = float64(v)
	}
	return a.finish()
}

// NewInt64 returns an Int64 array holding a copy of vals.
func NewInt64(vals []int64, opts ...Option) *Array {
	a := newArray(Int64, len(vals), gatherOptions(opts...))
	copy(a.data.i, vals)
	return a.finish()
}

// NewInt32 returns an Int32 array holding a copy of vals.
func NewInt32(vals []int32, opts ...Option) *Array {
	return fromSigned(Int32, vals, gatherOptions(opts...))
}

// NewInt16 returns an Int16 array holding a copy of vals.
func NewInt16(vals []int16, opts ...Option) *Array {
	return fromSigned(Int16, vals, gatherOptions(opts...))
}

// NewInt8 returns an Int8 array holding a copy of vals.
func NewInt8(vals []int8, opts ...Option) *Array {
	return fromSigned(Int8, vals, gatherOptions(opts...))
}

// NewWide returns a Wide array holding a copy of vals.
func NewWide(vals []int64, opts ...Option) *Array {
	a := newArray(Wide, len(vals), gatherOptions(opts...))
	copy(a.data.i, vals)
	return a.finish()
}

// NewDecimal returns a Decimal array holding a copy of vals.
func NewDecimal(vals []decimal.Decimal, opts ...Option) *Array {
	a := newArray(Decimal, len(vals), gatherOptions(opts...))
	copy(a.data.d, vals)
	return a.finish()
}

// NewComplex returns a Complex array holding a copy of vals.
func NewComplex(vals []complex128, opts ...Option) *Array {
	a := newArray(Complex, len(vals), gatherOptions(opts...))
	copy(a.data.c, vals)
	return a.finish()
}

// NewChar returns a Char array holding a copy of vals.
func NewChar(vals []rune, opts ...Option) *Array {
	a := newArray(Char, len(vals), gatherOptions(opts...))
	copy(a.data.r, vals)
	return a.finish()
}

// NewText returns a Text array holding a copy of vals.
func NewText(vals []string, opts ...Option) *Array {
	a := newArray(Text, len(vals), gatherOptions(opts...))
	copy(a.data.s, vals)
	return a.finish()
}

// FromSigned builds an integral array from any signed integer slice.
// The kind follows the element width: 1 byte → Int8, 2 → Int16, 4 → Int32,
// 8 → Int64 (so int on 64-bit platforms maps to Int64).
func FromSigned[T constraints.Signed](vals []T, opts ...Option) *Array {
	var zero T
	k := Int64
	switch unsafe.Sizeof(zero) {
	case 1:
		k = Int8
	case 2:
		k = Int16
	case 4:
		k = Int32
	}
	return fromSigned(k, vals, gatherOptions(opts...))
}

// FromFloats builds a floating array: 4-byte elements → Float32, else Float64.
func FromFloats[T constraints.Float](vals []T, opts ...Option) *Array {
	var zero T
	k := Float64
	if unsafe.Sizeof(zero) == 4 {
		k = Float32
	}
	a := newArray(k, len(vals), gatherOptions(opts...))
	for i, v := range vals {
		a.data.f[i] = float64(v)
	}
	return a.finish()
}

func fromSigned[T constraints.Signed](k Kind, vals []T, opts Options) *Array {
	a := newArray(k, len(vals), opts)
	for i, v := range vals {
		a.data.i[i] = int64(v)
	}
	return a.finish()
}

// ---------- Accessors ----------

// Len returns the element count. Complexity: O(1).
func (a *Array) Len() int { return a.n }

// Kind returns the unified element kind. Complexity: O(1).
func (a *Array) Kind() Kind { return a.kind }

// OriginalKinds returns a copy of the per-element pre-unification kinds,
// or nil when provenance is not tracked.
func (a *Array) OriginalKinds() []Kind {
	if a.origin == nil {
		return nil
	}
	out := make([]Kind, len(a.origin))
	copy(out, a.origin)
	return out
}

// At returns element i as a Scalar of the array's kind.
func (a *Array) At(i int) (Scalar, error) {
	if i < 0 || i >= a.n {
		return Scalar{}, kindErrorf(opAt, ErrIndexOutOfRange, "index %d, length %d", i, a.n)
	}
	return a.elem(i), nil
}

// elem returns element i without bounds checking.
func (a *Array) elem(i int) Scalar {
	s := Scalar{kind: a.kind}
	switch a.kind.storageClass() {
	case classFloat:
		s.f = a.data.f[i]
	case classInt:
		s.i = a.data.i[i]
	case classDecimal:
		s.d = a.data.d[i]
	case classComplex:
		s.c = a.data.c[i]
	case classChar:
		s.r = a.data.r[i]
	case classText:
		s.s = a.data.s[i]
	}
	return s
}

// set stores s at position i. s must already have the array's storage class.
func (a *Array) set(i int, s Scalar) {
	switch a.kind.storageClass() {
	case classFloat:
		a.data.f[i] = s.f
	case classInt:
		a.data.i[i] = s.i
	case classDecimal:
		a.data.d[i] = s.d
	case classComplex:
		a.data.c[i] = s.c
	case classChar:
		a.data.r[i] = s.r
	case classText:
		a.data.s[i] = s.s
	}
}

// Scalars returns every element boxed as a Scalar of the array's kind.
func (a *Array) Scalars() []Scalar {
	out := make([]Scalar, a.n)
	for i := range out {
		out[i] = a.elem(i)
	}
	return out
}

// Clone returns an independent copy with a fresh aggregate cache.
func (a *Array) Clone() *Array {
	return a.gather(identity(a.n))
}

// gather builds a new array whose element i is a[idx[i]].
// idx entries must be valid indices; provenance is carried along.
func (a *Array) gather(idx []int) *Array {
	out := newArray(a.kind, len(idx), a.opts)
	for i, j := range idx {
		out.set(i, a.elem(j))
	}
	if a.origin != nil {
		out.origin = make([]Kind, len(idx))
		for i, j := range idx {
			out.origin[i] = a.origin[j]
		}
	}
	return out
}

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Slice returns the inclusive sub-range [start, end] as a new array.
// Errors: ErrIndexOutOfRange when start < 0, start > end or end >= Len().
func (a *Array) Slice(start, end int) (*Array, error) {
	if end >= a.n || start < 0 || start > end {
		return nil, kindErrorf(opSlice, ErrIndexOutOfRange, "range [%d,%d], length %d", start, end, a.n)
	}
	idx := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		idx = append(idx, i)
	}
	return a.gather(idx), nil
}

// Equal reports whether b has the same kind, length and elements.
// Provenance and options are not compared.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind || a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if !a.elem(i).Equal(b.elem(i)) {
			return false
		}
	}
	return true
}
