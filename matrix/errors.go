// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every constructor and accessor returns one of these sentinels
// (possibly wrapped with context) and tests MUST check them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "github.com/pkg/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the outer boundary with
// matrixErrorf / denseErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil input -> shape -> index -> NaN/Inf -> dimension mismatch.

var (
	// ErrNilArray indicates that a nil *typedarray.Array was passed to an adapter.
	ErrNilArray = errors.New("matrix: array is nil")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive (including an adapter fed an empty array).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (Set, adapter ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// denseErrorf wraps an underlying error with method and index context.
func denseErrorf(typ, method string, row, col int, err error) error {
	return errors.Wrapf(err, "%s.%s(%d,%d)", typ, method, row, col)
}
