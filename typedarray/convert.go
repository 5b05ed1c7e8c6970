// SPDX-License-Identifier: MIT
// Package: typedarray
//
// Purpose:
//   - The conversion engine: one scalar-level rule per (source class → target
//     kind) pair, reused by every view, by heterogeneous unification, by
//     arithmetic promotion and by concatenation.
//
// Narrowing policy (externally observable, keep consistent):
//   - floating/decimal → integral: truncate toward zero; values beyond the
//     target range (and ±Inf) saturate at the target's min/max; NaN → 0.
//   - integral → narrower integral: two's-complement wrap (Go's native rule).
//   - A conversion is "lossy" when the converted value differs from the source
//     value; lossy conversions fire one precision-loss diagnostic per call
//     unless suppressed. Suppression never changes a value.
//
// Text & Char:
//   - numeric → Text uses canonical rendering (see format.go); Text → numeric
//     parses after trimming surrounding whitespace.
//   - to/from Char: the rendered or trimmed text must be exactly one rune,
//     otherwise ErrIncompatibleOperandKinds.
package typedarray

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// 2^53: integers beyond this magnitude may not survive a float64 round-trip.
const maxExactFloat = 1 << 53

var (
	decMaxInt64 = decimal.NewFromInt(math.MaxInt64)
	decMinInt64 = decimal.NewFromInt(math.MinInt64)
)

// convertScalar converts s into kind to.
// Returns the converted scalar and whether the value changed (lossy).
func convertScalar(s Scalar, to Kind) (Scalar, bool, error) {
	if s.kind == Unsupported || to == Unsupported {
		return Scalar{}, false, kindErrorf("convert", ErrUnsupportedKindConversion,
			"%s to %s", s.kind, to)
	}
	if s.kind == to {
		return s, false, nil
	}
	switch {
	case to.IsFloating():
		return toFloating(s, to)
	case to.IsIntegral():
		return toIntegral(s, to)
	}
	switch to {
	case Decimal:
		return toDecimal(s)
	case Complex:
		return toComplex(s)
	case Char:
		return toChar(s)
	case Text:
		return Scalar{kind: Text, s: FormatScalar(s)}, false, nil
	}
	return Scalar{}, false, kindErrorf("convert", ErrUnsupportedKindConversion, "%s to %s", s.kind, to)
}

func notRealNumeric(s Scalar, to Kind) error {
	return kindErrorf("convert", ErrUnsupportedKindConversion,
		"%s is not a numerical type for which conversion to %s is meaningful", s.kind, to)
}

func parseFailure(s Scalar, to Kind, err error) error {
	return kindErrorf("convert", ErrUnsupportedKindConversion,
		"cannot parse %s %q as %s (%v)", s.kind, FormatScalar(s), to, err)
}

// textOf returns the trimmed text form of a Char or Text scalar.
func textOf(s Scalar) string {
	if s.kind == Char {
		return strings.TrimSpace(string(s.r))
	}
	return strings.TrimSpace(s.s)
}

// toFloating converts into Float64 or Float32.
func toFloating(s Scalar, to Kind) (Scalar, bool, error) {
	var (
		v     float64
		lossy bool
	)
	switch s.kind.storageClass() {
	case classFloat:
		v = s.f
	case classInt:
		v = float64(s.i)
		lossy = !intSurvivesFloat(s.i, v)
	case classDecimal:
		var exact bool
		v, exact = s.d.Float64()
		lossy = !exact
	case classChar, classText:
		bits := 64
		if to == Float32 {
			bits = 32
		}
		f, err := strconv.ParseFloat(textOf(s), bits)
		if err != nil {
			return Scalar{}, false, parseFailure(s, to, err)
		}
		v = f
	default:
		return Scalar{}, false, notRealNumeric(s, to)
	}
	if to == Float32 {
		n := float64(float32(v))
		if n != v && !math.IsNaN(v) {
			lossy = true
		}
		v = n
	}
	return Scalar{kind: to, f: v}, lossy, nil
}

// intSurvivesFloat reports whether float64(i) == f represents i exactly.
func intSurvivesFloat(i int64, f float64) bool {
	if i <= maxExactFloat && i >= -maxExactFloat {
		return true
	}
	if f >= math.MaxInt64 { // 2^63: int64(f) would be implementation-defined
		return false
	}
	return int64(f) == i
}

// toIntegral converts into Int64, Int32, Int16, Int8 or Wide.
func toIntegral(s Scalar, to Kind) (Scalar, bool, error) {
	var (
		v     int64
		lossy bool
	)
	switch s.kind.storageClass() {
	case classInt:
		v = s.i
	case classFloat:
		v, lossy = saturateFloat(s.f)
	case classDecimal:
		v, lossy = saturateDecimal(s.d)
	case classChar, classText:
		t := textOf(s)
		if p, err := strconv.ParseInt(t, 10, 64); err == nil {
			v = p
			break
		}
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return Scalar{}, false, parseFailure(s, to, err)
		}
		v, lossy = saturateFloat(f)
	default:
		return Scalar{}, false, notRealNumeric(s, to)
	}
	n := wrapInt(v, to)
	if n != v {
		lossy = true
	}
	return Scalar{kind: to, i: n}, lossy, nil
}

// saturateFloat truncates toward zero and clamps to the int64 range.
func saturateFloat(f float64) (int64, bool) {
	switch {
	case math.IsNaN(f):
		return 0, true
	case f >= math.MaxInt64: // 2^63 and above, +Inf
		return math.MaxInt64, true
	case f < math.MinInt64:
		return math.MinInt64, true
	}
	t := math.Trunc(f)
	return int64(t), t != f
}

func saturateDecimal(d decimal.Decimal) (int64, bool) {
	switch {
	case d.GreaterThan(decMaxInt64):
		return math.MaxInt64, true
	case d.LessThan(decMinInt64):
		return math.MinInt64, true
	}
	return d.IntPart(), !d.Equal(d.Truncate(0))
}

// wrapInt narrows v to the width of kind k (two's-complement wrap).
func wrapInt(v int64, k Kind) int64 {
	switch k {
	case Int32:
		return int64(int32(v))
	case Int16:
		return int64(int16(v))
	case Int8:
		return int64(int8(v))
	}
	return v
}

func toDecimal(s Scalar) (Scalar, bool, error) {
	switch s.kind.storageClass() {
	case classInt:
		return Scalar{kind: Decimal, d: decimal.NewFromInt(s.i)}, false, nil
	case classFloat:
		if math.IsNaN(s.f) || math.IsInf(s.f, 0) {
			return Scalar{}, false, kindErrorf("convert", ErrUnsupportedKindConversion,
				"%s %v has no Decimal representation", s.kind, s.f)
		}
		if s.kind == Float32 {
			return Scalar{kind: Decimal, d: decimal.NewFromFloat32(float32(s.f))}, false, nil
		}
		return Scalar{kind: Decimal, d: decimal.NewFromFloat(s.f)}, false, nil
	case classChar, classText:
		d, err := decimal.NewFromString(textOf(s))
		if err != nil {
			return Scalar{}, false, parseFailure(s, Decimal, err)
		}
		return Scalar{kind: Decimal, d: d}, false, nil
	}
	return Scalar{}, false, notRealNumeric(s, Decimal)
}

func toComplex(s Scalar) (Scalar, bool, error) {
	switch s.kind.storageClass() {
	case classFloat:
		return Scalar{kind: Complex, c: complex(s.f, 0)}, false, nil
	case classInt:
		f := float64(s.i)
		return Scalar{kind: Complex, c: complex(f, 0)}, !intSurvivesFloat(s.i, f), nil
	case classDecimal:
		f, exact := s.d.Float64()
		return Scalar{kind: Complex, c: complex(f, 0)}, !exact, nil
	case classChar, classText:
		c, err := strconv.ParseComplex(textOf(s), 128)
		if err != nil {
			return Scalar{}, false, parseFailure(s, Complex, err)
		}
		return Scalar{kind: Complex, c: c}, false, nil
	}
	return Scalar{}, false, notRealNumeric(s, Complex)
}

func toChar(s Scalar) (Scalar, bool, error) {
	if s.kind == Complex {
		return Scalar{}, false, notRealNumeric(s, Char)
	}
	t := strings.TrimSpace(FormatScalar(s))
	if utf8.RuneCountInString(t) != 1 {
		return Scalar{}, false, kindErrorf("convert", ErrIncompatibleOperandKinds,
			"%s %q is not a single character", s.kind, t)
	}
	r, _ := utf8.DecodeRuneInString(t)
	return Scalar{kind: Char, r: r}, false, nil
}

// ---------- Array-level engine ----------

// convertTo returns a new array holding every element converted into k.
// Lossy conversions are counted and reported once, unless cfg.quiet.
// The result keeps a's provenance.
func (a *Array) convertTo(op string, k Kind, cfg convertConfig) (*Array, error) {
	if k == a.kind {
		return a.Clone(), nil
	}
	out := newArray(k, a.n, a.opts)
	lossy := 0
	for i := 0; i < a.n; i++ {
		v, l, err := convertScalar(a.elem(i), k)
		if err != nil {
			return nil, kindErrorf(op, err, "element %d", i)
		}
		if l {
			lossy++
		}
		out.set(i, v)
	}
	if a.origin != nil {
		out.origin = append([]Kind(nil), a.origin...)
	}
	if lossy > 0 && !cfg.quiet {
		a.opts.logger.LogPrecisionLoss(op, a.kind, k, lossy, a.n)
	}
	return out, nil
}

// as converts under the array's own configuration (used by internal promotion).
func (a *Array) as(op string, k Kind) (*Array, error) {
	return a.convertTo(op, k, gatherConvert(a.opts))
}

// View returns the array converted into kind k as a new array.
func (a *Array) View(k Kind, opts ...ConvertOption) (*Array, error) {
	return a.convertTo(opView, k, gatherConvert(a.opts, opts...))
}

// Float64s returns the Float64 view.
func (a *Array) Float64s(opts ...ConvertOption) ([]float64, error) {
	v, err := a.convertTo("Float64s", Float64, gatherConvert(a.opts, opts...))
	if err != nil {
		return nil, err
	}
	return v.data.f, nil
}

// Float32s returns the Float32 view.
func (a *Array) Float32s(opts ...ConvertOption) ([]float32, error) {
	v, err := a.convertTo("Float32s", Float32, gatherConvert(a.opts, opts...))
	if err != nil {
		return nil, err
	}
	out := make([]float32, v.n)
	for i, f := range v.data.f {
		out[i] = float32(f)
	}
	return out, nil
}

// Int64s returns the Int64 view.
func (a *Array) Int64s(opts ...ConvertOption) ([]int64, error) {
	v, err := a.convertTo("Int64s", Int64, gatherConvert(a.opts, opts...))
	if err != nil {
		return nil, err
	}
	return v.data.i, nil
}

// Int32s returns the Int32 view.
func (a *Array) Int32s(opts ...ConvertOption) ([]int32, error) {
	v, err := a.convertTo("Int32s", Int32, gatherConvert(a.opts, opts...))
	if err != nil {
		return nil, err
	}
	return narrowInts[int32](v.data.i), nil
}

// Int16s returns the Int16 view.
func (a *Array) Int16s(opts ...ConvertOption) ([]int16, error) {
	v, err := a.convertTo("Int16s", Int16, gatherConvert(a.opts, opts...))
	if err != nil {
		return nil, err
	}
	return narrowInts[int16](v.data.i), nil
}

// Int8s returns the Int8 view.
func (a *Array) Int8s(opts ...ConvertOption) ([]int8, error) {
	v, err := a.convertTo("Int8s", Int8, gatherConvert(a.opts, opts...))
	if err != nil {
		return nil, err
	}
	return narrowInts[int8](v.data.i), nil
}

func narrowInts[T int32 | int16 | int8](in []int64) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}

// Wides returns the Wide view.
func (a *Array) Wides(opts ...ConvertOption) ([]int64, error) {
	v, err := a.convertTo("Wides", Wide, gatherConvert(a.opts, opts...))
	if err != nil {
		return nil, err
	}
	return v.data.i, nil
}

// Decimals returns the Decimal view.
func (a *Array) Decimals(opts ...ConvertOption) ([]decimal.Decimal, error) {
	v, err := a.convertTo("Decimals", Decimal, gatherConvert(a.opts, opts...))
	if err != nil {
		return nil, err
	}
	return v.data.d, nil
}

// Complexes returns the Complex view.
func (a *Array) Complexes(opts ...ConvertOption) ([]complex128, error) {
	v, err := a.convertTo("Complexes", Complex, gatherConvert(a.opts, opts...))
	if err != nil {
		return nil, err
	}
	return v.data.c, nil
}

// Chars returns the Char view.
func (a *Array) Chars(opts ...ConvertOption) ([]rune, error) {
	v, err := a.convertTo("Chars", Char, gatherConvert(a.opts, opts...))
	if err != nil {
		return nil, err
	}
	return v.data.r, nil
}

// Strings returns the Text view.
func (a *Array) Strings(opts ...ConvertOption) ([]string, error) {
	v, err := a.convertTo("Strings", Text, gatherConvert(a.opts, opts...))
	if err != nil {
		return nil, err
	}
	return v.data.s, nil
}
