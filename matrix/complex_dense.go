// SPDX-License-Identifier: MIT

package matrix

import (
	"math/cmplx"
	"strconv"
	"strings"
)

// ComplexDense is a row-major matrix of complex128 values.
// It mirrors Dense: same indexing, same error surface, same numeric policy
// (a component that is NaN or ±Inf is rejected by Set under validation).
type ComplexDense struct {
	r, c           int
	data           []complex128
	validateNaNInf bool
}

// NewComplexDense creates an r×c ComplexDense initialized to zeros.
func NewComplexDense(rows, cols int, opts ...Option) (*ComplexDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewComplexDense", ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &ComplexDense{r: rows, c: cols, data: make([]complex128, rows*cols), validateNaNInf: o.validateNaNInf}, nil
}

// Rows returns the number of rows.
func (m *ComplexDense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *ComplexDense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *ComplexDense) Shape() (int, int) { return m.r, m.c }

func (m *ComplexDense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(typComplexDense, method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *ComplexDense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange; ErrNaNInf under the finite-value policy.
func (m *ComplexDense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && !finiteComplex(v) {
		return denseErrorf(typComplexDense, opSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

func finiteComplex(v complex128) bool {
	return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
}

// Clone returns a deep copy.
func (m *ComplexDense) Clone() *ComplexDense {
	data := make([]complex128, len(m.data))
	copy(data, m.data)

	return &ComplexDense{r: m.r, c: m.c, data: data, validateNaNInf: m.validateNaNInf}
}

// Data returns a copy of the row-major backing slice.
func (m *ComplexDense) Data() []complex128 {
	out := make([]complex128, len(m.data))
	copy(out, m.data)

	return out
}

// ConjugateTranspose returns the Hermitian transpose (cols×rows, conjugated).
// Complexity: O(r·c).
func (m *ComplexDense) ConjugateTranspose() *ComplexDense {
	res := &ComplexDense{r: m.c, c: m.r, data: make([]complex128, len(m.data)), validateNaNInf: m.validateNaNInf}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return res
}

// String renders one "[a, b, ...]" line per row.
func (m *ComplexDense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatComplex(m.data[i*m.c+j], 'g', -1, 128))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
