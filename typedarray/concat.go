// SPDX-License-Identifier: MIT

package typedarray

// Concatenate appends other after a.
// Implementation:
//   - Stage 1: resolve the result kind from {a.Kind(), other.Kind()} through
//     the promotion ladder (as if both element streams were one input).
//   - Stage 2: convert both arrays into that kind.
//   - Stage 3: copy a's elements, then other's, and join their provenance
//     (an untracked side contributes its own kind per element).
//
// Errors: ErrNilArray; conversion errors from Stage 2.
// Complexity: O(n+m) time and space.
func (a *Array) Concatenate(other *Array) (*Array, error) {
	if other == nil {
		return nil, arrayErrorf(opConcatenate, ErrNilArray)
	}
	k, err := Resolve([]Kind{a.kind, other.kind})
	if err != nil {
		return nil, arrayErrorf(opConcatenate, err)
	}
	left, err := a.as(opConcatenate, k)
	if err != nil {
		return nil, err
	}
	right, err := other.as(opConcatenate, k)
	if err != nil {
		return nil, err
	}

	out := newArray(k, a.n+other.n, a.opts)
	for i := 0; i < left.n; i++ {
		out.set(i, left.elem(i))
	}
	for i := 0; i < right.n; i++ {
		out.set(a.n+i, right.elem(i))
	}
	out.origin = append(a.provenance(), other.provenance()...)
	return out, nil
}

// provenance returns the tracked origin kinds, or the array kind per element.
func (a *Array) provenance() []Kind {
	if a.origin != nil {
		return append([]Kind(nil), a.origin...)
	}
	return repeatKind(a.kind, a.n)
}
