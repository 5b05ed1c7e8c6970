// SPDX-License-Identifier: MIT

// Package typedarray implements immutable numeric arrays whose elements are
// unified into one scalar Kind.
//
// An Array is built either from a one-typed Go slice (NewFloat64, NewInt32,
// FromSigned, ...) or from heterogeneous scalars (Unify, FromValues). In the
// second case a promotion ladder picks the dominant kind and every element is
// converted into it; the original kind of each element is kept as provenance
// (OriginalKinds).
//
// What you get:
//
//   - Kinds: Float64, Float32, Int64, Int32, Int16, Int8, Decimal
//     (arbitrary precision, shopspring/decimal), Wide (a provenance-distinct
//     64-bit integer), Complex, Char and Text.
//   - Views: Float64s, Int8s, Decimals, Strings, ... and View(kind). Lossy
//     narrowing logs one "possible loss of precision" warning per call
//     through log/slog unless silenced by WithQuietConversions or Quiet().
//   - Aggregates: Max, Min, MaxIndex, MinIndex, Sum, Product, Mean. They are
//     computed at most once per instance; integral Sum/Product fall back to
//     float64 on overflow and say so (Total.DemotedToFloat).
//   - Arithmetic: elementwise Plus/Minus/Times/Over (array or scalar operand)
//     and the unary family (Negate, Abs, Sqrt, Log, Exp, Pow, Floor, ...).
//     Integral results that could leave the int64 range are computed as
//     Float64 instead.
//   - Order: Sort, SortBy, Reverse and Randomize return the permutation they
//     applied; IndexOf, IndicesOf, NearestIndex and NearestValue search.
//   - Concatenate joins two arrays under the same promotion ladder.
//
// Every transform returns a new *Array; nothing mutates in place, so arrays
// may be shared between goroutines once built.
//
// Errors are package sentinels (ErrIncompatibleOperandKinds, ...) wrapped with
// the operation name; match them with errors.Is.
//
//	arr, err := typedarray.FromValues([]interface{}{int32(1), 2.5, int8(3)})
//	// arr.Kind() == typedarray.Float64, arr.String() == "[1, 2.5, 3]"
package typedarray
