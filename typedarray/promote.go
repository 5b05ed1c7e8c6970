// SPDX-License-Identifier: MIT
// Package: typedarray
//
// Purpose:
//   - The promotion lattice: choose one dominant Kind for a heterogeneous input
//     and convert every element into it.
//
// Ladder (first match wins; each level scans the whole input):
//  1. any Text                      → Text
//  2. any Complex                   → Complex
//  3. any Unsupported               → ErrUnrecognizedInputKind
//  4. any Decimal                   → Decimal
//  5. any Wide                      → Wide, or Decimal when a floating kind is present
//  6. any Float64/Float32           → Float64
//  7. any Int64/Int32/Int16/Int8    → Int64
//  8. any Char                      → Char
//  9. otherwise (incl. empty input) → ErrUnrecognizedInputKind
//
// Determinism:
//   - The result depends only on the set of kinds present, never on order.
package typedarray

// kindSet records which kinds occur in an input.
type kindSet [len(kindNames)]bool

func (ks *kindSet) add(k Kind) {
	if int(k) < len(ks) {
		ks[k] = true
		return
	}
	ks[Unsupported] = true
}

func (ks *kindSet) any(kinds ...Kind) bool {
	for _, k := range kinds {
		if ks[k] {
			return true
		}
	}
	return false
}

// Resolve returns the dominant kind for the given element kinds.
// Errors: ErrUnrecognizedInputKind when an Unsupported kind decides the
// outcome or when nothing recognizable is present.
func Resolve(kinds []Kind) (Kind, error) {
	var ks kindSet
	for _, k := range kinds {
		ks.add(k)
	}
	return ks.resolve()
}

func (ks *kindSet) resolve() (Kind, error) {
	switch {
	case ks.any(Text):
		return Text, nil
	case ks.any(Complex):
		return Complex, nil
	case ks.any(Unsupported):
		return Unsupported, kindErrorf(opResolve, ErrUnrecognizedInputKind, "input contains an unsupported element")
	case ks.any(Decimal):
		return Decimal, nil
	case ks.any(Wide):
		// Wide mixed with floating values is resolved through Decimal, not
		// through lossy float truncation.
		if ks.any(Float64, Float32) {
			return Decimal, nil
		}
		return Wide, nil
	case ks.any(Float64, Float32):
		return Float64, nil
	case ks.any(Int64, Int32, Int16, Int8):
		return Int64, nil
	case ks.any(Char):
		return Char, nil
	}
	return Unsupported, kindErrorf(opResolve, ErrUnrecognizedInputKind, "no recognizable element kind")
}

// Unify builds an array from heterogeneous scalars.
// Implementation:
//   - Stage 1: resolve the dominant kind over all element kinds.
//   - Stage 2: convert each element into it (conversion engine rules).
//   - Stage 3: record every element's original kind as provenance.
//
// Errors:
//   - ErrUnrecognizedInputKind from Stage 1.
//   - ErrUnsupportedKindConversion / ErrIncompatibleOperandKinds from Stage 2.
//
// Complexity: O(n) time and space.
func Unify(vals []Scalar, opts ...Option) (*Array, error) {
	o := gatherOptions(opts...)
	origin := make([]Kind, len(vals))
	var ks kindSet
	for i, v := range vals {
		origin[i] = v.kind
		ks.add(v.kind)
	}
	k, err := ks.resolve()
	if err != nil {
		return nil, arrayErrorf(opUnify, err)
	}

	out := newArray(k, len(vals), o)
	lossy, lossFrom := 0, k
	for i, v := range vals {
		cv, l, err := convertScalar(v, k)
		if err != nil {
			return nil, kindErrorf(opUnify, err, "element %d", i)
		}
		if l {
			if lossy == 0 {
				lossFrom = v.kind
			}
			lossy++
		}
		out.set(i, cv)
	}
	out.origin = origin
	if lossy > 0 && !o.quiet {
		o.logger.LogPrecisionLoss(opUnify, lossFrom, k, lossy, len(vals))
	}
	return out, nil
}

// FromValues boxes plain Go values with ScalarOf and unifies them.
func FromValues(vals []interface{}, opts ...Option) (*Array, error) {
	scalars := make([]Scalar, len(vals))
	for i, v := range vals {
		scalars[i] = ScalarOf(v)
	}
	return Unify(scalars, opts...)
}
