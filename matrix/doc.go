// SPDX-License-Identifier: MIT

// Package matrix adapts typed arrays to dense row-major matrices.
//
// The matrix package provides:
//
//   - Dense (float64) and ComplexDense (complex128) containers with safe
//     At/Set accessors that return ErrOutOfRange instead of panicking.
//   - RowVector / ColumnVector: a *typedarray.Array as a 1×n or n×1 Dense,
//     read through the array's Float64 view; ComplexRowVector /
//     ComplexColumnVector do the same through the Complex view.
//   - ToArray / ComplexToArray: flatten a matrix back into an array.
//   - Transpose and Mul for the common vector identities
//     (row × column is the dot product).
//
// Numeric policy: NaN and ±Inf are rejected on ingestion unless
// WithNoValidateNaNInf() is given.
//
//	row, _ := matrix.RowVector(arr)
//	col, _ := matrix.ColumnVector(arr)
//	dot, _ := matrix.Mul(row, col) // 1×1
package matrix
