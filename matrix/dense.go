// SPDX-License-Identifier: MIT

// Package matrix - Dense: a row-major float64 matrix.
//
// Purpose:
//   - Flat backing slice of r*c elements, index = row*c + col.
//   - Safe public surface: At/Set return errors instead of panicking.
//   - Numeric policy: NaN/±Inf are rejected by Set unless the matrix was
//     created with WithNoValidateNaNInf().
package matrix

import (
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

const (
	typDense        = "Dense"
	typComplexDense = "ComplexDense"

	opAt        = "At"
	opSet       = "Set"
	opNewDense  = "NewDense"
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c           int       // number of rows and columns
	data           []float64 // flat backing storage, len == r*c
	validateNaNInf bool      // reject NaN/±Inf in Set
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): resolve options and allocate the flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: o.validateNaNInf}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(typDense, method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange; ErrNaNInf under the finite-value policy.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(typDense, opSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix (policy included).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data, validateNaNInf: m.validateNaNInf}
}

// Data returns a copy of the row-major backing slice.
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders one "[a, b, ...]" line per row.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Transpose returns a new Matrix where rows and columns of m are swapped.
// Stage 1 (Validate): nil-check.
// Stage 2 (Prepare): allocate Dense(cols×rows) with m's policy.
// Stage 3 (Execute): fast-path for *Dense, fallback to the interface.
// Complexity: O(r·c).
func Transpose(m Matrix) (Matrix, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}
		return res, nil
	}

	res.validateNaNInf = false // the source already accepted its values
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j)    // safe: bounds ensured
			_ = res.Set(j, i, v) // safe: within bounds
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication a × b.
// A RowVector times a ColumnVector of equal length is their 1×1 dot product.
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense (no finite-value policy; IEEE results stand).
// Stage 3 (Execute): i-k-j loop with a fast-path for two *Dense.
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul(a, b Matrix) (Matrix, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i := 0; i < aRows; i++ {
			rowA, rowR := i*aCols, i*bCols
			for k := 0; k < aCols; k++ {
				av := da.data[rowA+k]
				rowB := k * bCols
				for j := 0; j < bCols; j++ {
					res.data[rowR+j] += av * db.data[rowB+j]
				}
			}
		}
		return res, nil
	}

	var av, bv, sum float64
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			sum = 0
			for k := 0; k < aCols; k++ {
				av, _ = a.At(i, k)
				bv, _ = b.At(k, j)
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}
