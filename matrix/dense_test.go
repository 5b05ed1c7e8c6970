// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numarray/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewComplexDense(-1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDenseShape(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	r, c := m.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)

	cm, err := matrix.NewComplexDense(1, 1)
	require.NoError(t, err)
	_, err = cm.At(1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSetNaNInfPolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
	v, err := loose.At(0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	cm, err := matrix.NewComplexDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, cm.Set(0, 0, complex(1, math.NaN())), matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, orig)

	cm, err := matrix.NewComplexDense(1, 1)
	require.NoError(t, err)
	cc := cm.Clone()
	require.NoError(t, cc.Set(0, 0, 2i))
	v, err := cm.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), v)
}

func TestTransposeAndMul(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, a.Set(i, j, float64(i*3+j+1)))
		}
	}

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 3, at.Rows())
	assert.Equal(t, 2, at.Cols())
	v, err := at.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	// [1 2 3; 4 5 6] × its transpose = [14 32; 32 77]
	p, err := matrix.Mul(a, at)
	require.NoError(t, err)
	assert.Equal(t, []float64{14, 32, 32, 77}, p.(*matrix.Dense).Data())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestConjugateTranspose(t *testing.T) {
	m, err := matrix.NewComplexDense(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1+2i))
	require.NoError(t, m.Set(0, 1, 3-4i))

	h := m.ConjugateTranspose()
	r, c := h.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, []complex128{1 - 2i, 3 + 4i}, h.Data())
}

func TestDenseString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1.5))
	require.NoError(t, m.Set(1, 0, -2))
	assert.Equal(t, "[0, 1.5]\n[-2, 0]\n", m.String())

	cm, err := matrix.NewComplexDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, cm.Set(0, 0, 1+2i))
	assert.Equal(t, "[(1+2i)]\n", cm.String())
}
