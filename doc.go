// SPDX-License-Identifier: MIT

// Package numarray is a toolkit for typed numeric arrays with automatic kind
// unification.
//
// What is numarray?
//
//	A pure-Go library that brings together:
//		• typedarray: immutable arrays over a closed set of scalar kinds
//		  (floats, signed integers, arbitrary-precision decimals, complex,
//		  characters and text) with a promotion ladder, lossy-conversion
//		  diagnostics, cached aggregates and overflow-aware arithmetic
//		• permute: deterministic, seeded random permutations
//		• matrix: row/column vector adapters over dense matrices
//
// Under the hood, everything is organized under these subpackages:
//
//	typedarray/   Kind, Scalar, Array, conversions, aggregates, arithmetic, ordering
//	permute/      seeded permutation generator used by Array.Randomize
//	matrix/       Dense, ComplexDense, RowVector, ColumnVector
//	cmd/numarray/ command-line front end
//
// Quick start:
//
//	a := typedarray.NewInt64([]int64{3, 1, 2})
//	sorted, perm, _ := a.Sort()   // [1, 2, 3], perm [1 2 0]
//	total, _ := sorted.Sum()      // Int64 6
//
// See the package documentation of each subpackage for the full contract.
package numarray
