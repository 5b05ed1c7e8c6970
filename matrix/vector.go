// SPDX-License-Identifier: MIT

// Package matrix - typed array adapters.
//
// Purpose:
//   - Lift a *typedarray.Array into a 1×n row vector or an n×1 column vector,
//     reading the array through its Float64 (or Complex) view.
//   - Flatten a matrix back into a Float64 / Complex array in row-major order.
//
// Contract:
//   - A nil array → ErrNilArray; an empty array → ErrInvalidDimensions
//     (a matrix has at least one cell).
//   - View failures surface the typedarray sentinel unchanged under
//     errors.Is (e.g., a Complex array has no Float64 view).
//   - Every element passes through Set, so the finite-value policy applies.
package matrix

import (
	"github.com/katalvlaran/numarray/typedarray"
)

const (
	opRowVector           = "RowVector"
	opColumnVector        = "ColumnVector"
	opComplexRowVector    = "ComplexRowVector"
	opComplexColumnVector = "ComplexColumnVector"
	opToArray             = "ToArray"
)

// viewOptions translates adapter options into per-call conversion options.
func viewOptions(o Options) []typedarray.ConvertOption {
	if o.quiet {
		return []typedarray.ConvertOption{typedarray.Quiet()}
	}
	return nil
}

func checkArray(op string, a *typedarray.Array) error {
	if a == nil {
		return matrixErrorf(op, ErrNilArray)
	}
	if a.Len() == 0 {
		return matrixErrorf(op, ErrInvalidDimensions)
	}
	return nil
}

// floatVector builds a rows×cols Dense from the Float64 view of a, where
// exactly one of rows/cols equals a.Len() and the other is 1.
func floatVector(op string, a *typedarray.Array, column bool, opts []Option) (*Dense, error) {
	if err := checkArray(op, a); err != nil {
		return nil, err
	}
	vals, err := a.Float64s(viewOptions(gatherOptions(opts...))...)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	rows, cols := 1, len(vals)
	if column {
		rows, cols = cols, rows
	}
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	for k, v := range vals {
		i, j := 0, k
		if column {
			i, j = k, 0
		}
		if err = m.Set(i, j, v); err != nil {
			return nil, matrixErrorf(op, err)
		}
	}

	return m, nil
}

// RowVector adapts a to a 1×n Dense through its Float64 view.
func RowVector(a *typedarray.Array, opts ...Option) (*Dense, error) {
	return floatVector(opRowVector, a, false, opts)
}

// ColumnVector adapts a to an n×1 Dense through its Float64 view.
func ColumnVector(a *typedarray.Array, opts ...Option) (*Dense, error) {
	return floatVector(opColumnVector, a, true, opts)
}

func complexVector(op string, a *typedarray.Array, column bool, opts []Option) (*ComplexDense, error) {
	if err := checkArray(op, a); err != nil {
		return nil, err
	}
	vals, err := a.Complexes(viewOptions(gatherOptions(opts...))...)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	rows, cols := 1, len(vals)
	if column {
		rows, cols = cols, rows
	}
	m, err := NewComplexDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	for k, v := range vals {
		i, j := 0, k
		if column {
			i, j = k, 0
		}
		if err = m.Set(i, j, v); err != nil {
			return nil, matrixErrorf(op, err)
		}
	}

	return m, nil
}

// ComplexRowVector adapts a to a 1×n ComplexDense through its Complex view.
func ComplexRowVector(a *typedarray.Array, opts ...Option) (*ComplexDense, error) {
	return complexVector(opComplexRowVector, a, false, opts)
}

// ComplexColumnVector adapts a to an n×1 ComplexDense through its Complex view.
func ComplexColumnVector(a *typedarray.Array, opts ...Option) (*ComplexDense, error) {
	return complexVector(opComplexColumnVector, a, true, opts)
}

// ToArray flattens m in row-major order into a Float64 array.
// The array options (logger, provenance) are forwarded to the constructor.
func ToArray(m Matrix, opts ...typedarray.Option) (*typedarray.Array, error) {
	if m == nil {
		return nil, matrixErrorf(opToArray, ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok {
		if d == nil {
			return nil, matrixErrorf(opToArray, ErrNilMatrix)
		}
		return typedarray.NewFloat64(d.data, opts...), nil
	}
	rows, cols := m.Rows(), m.Cols()
	vals := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opToArray, err)
			}
			vals = append(vals, v)
		}
	}

	return typedarray.NewFloat64(vals, opts...), nil
}

// ComplexToArray flattens m in row-major order into a Complex array.
func ComplexToArray(m *ComplexDense, opts ...typedarray.Option) (*typedarray.Array, error) {
	if m == nil {
		return nil, matrixErrorf("ComplexToArray", ErrNilMatrix)
	}

	return typedarray.NewComplex(m.data, opts...), nil
}
