// SPDX-License-Identifier: MIT
// Package typedarray: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// typedarray package. Every operation returns one of these sentinels (possibly
// wrapped with operation context) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions; panics are reserved
// for nonsensical option values (programmer error).

package typedarray

import "github.com/pkg/errors"

// NOTE ON NAMING & WRAPPING
// -------------------------
// Every message is prefixed with "typedarray: ..." for consistency and easy
// grepping across logs. Operations attach context at the boundary through
// arrayErrorf / kindErrorf, producing "<Op>: <detail>: <sentinel>". The
// sentinel stays matchable with errors.Is.

var (
	// ErrUnrecognizedInputKind is returned when heterogeneous construction sees
	// an element kind outside the closed kind set (or no recognizable element).
	ErrUnrecognizedInputKind = errors.New("typedarray: unrecognized input kind")

	// ErrUnsupportedKindConversion indicates that a requested view or aggregate
	// is not meaningful for the source kind (e.g., Complex -> Int64, Max on Text).
	ErrUnsupportedKindConversion = errors.New("typedarray: unsupported kind conversion")

	// ErrIncompatibleOperandKinds indicates an operand kind disallowed for the
	// receiver (e.g., adding a Char to a Float64 array, IndexOf probe mismatch).
	ErrIncompatibleOperandKinds = errors.New("typedarray: incompatible operand kinds")

	// ErrLengthMismatch indicates operands of unequal length for an elementwise
	// operation or an explicit permutation of the wrong length.
	ErrLengthMismatch = errors.New("typedarray: length mismatch")

	// ErrIndexOutOfRange indicates an index outside [0, Len()) or an aggregate
	// requested on an empty array.
	ErrIndexOutOfRange = errors.New("typedarray: index out of range")

	// ErrUnsupportedOperation marks an operation with no defined semantics for
	// the array kind (e.g., Sort on Text).
	ErrUnsupportedOperation = errors.New("typedarray: unsupported operation")

	// ErrDivisionByZero is returned by integral and decimal division by zero.
	// Floating and complex division follow IEEE semantics instead.
	ErrDivisionByZero = errors.New("typedarray: division by zero")

	// ErrNilArray indicates that a nil *Array was passed as an operand.
	ErrNilArray = errors.New("typedarray: nil array")
)

// arrayErrorf wraps an underlying error with the given operation tag.
func arrayErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// kindErrorf wraps a sentinel with the operation tag and a formatted detail
// naming the offending kind(s).
func kindErrorf(tag string, err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, tag+": "+format, args...)
}
