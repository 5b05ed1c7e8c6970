// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numarray/matrix"
	"github.com/katalvlaran/numarray/typedarray"
)

func TestRowAndColumnVector(t *testing.T) {
	arr := typedarray.NewInt64([]int64{1, 2, 3})

	row, err := matrix.RowVector(arr)
	require.NoError(t, err)
	r, c := row.Shape()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)

	col, err := matrix.ColumnVector(arr)
	require.NoError(t, err)
	r, c = col.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c)
	v, err := col.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	dot, err := matrix.Mul(row, col)
	require.NoError(t, err)
	got, err := dot.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 14.0, got)
}

func TestVectorRejects(t *testing.T) {
	_, err := matrix.RowVector(nil)
	require.ErrorIs(t, err, matrix.ErrNilArray)

	_, err = matrix.ColumnVector(typedarray.NewFloat64(nil))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// Complex has no Float64 view.
	_, err = matrix.RowVector(typedarray.NewComplex([]complex128{1i}))
	require.ErrorIs(t, err, typedarray.ErrUnsupportedKindConversion)

	_, err = matrix.RowVector(typedarray.NewFloat64([]float64{1, math.NaN()}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.RowVector(typedarray.NewFloat64([]float64{1, math.NaN()}), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.Equal(t, 2, m.Cols())
}

func TestComplexVectors(t *testing.T) {
	arr := typedarray.NewComplex([]complex128{1 + 1i, 2 - 1i})

	row, err := matrix.ComplexRowVector(arr)
	require.NoError(t, err)
	assert.Equal(t, 2, row.Cols())

	col, err := matrix.ComplexColumnVector(typedarray.NewInt32([]int32{4, 5}))
	require.NoError(t, err)
	assert.Equal(t, []complex128{4, 5}, col.Data())

	back, err := matrix.ComplexToArray(row)
	require.NoError(t, err)
	assert.True(t, arr.Equal(back))
}

func TestToArrayRoundTrip(t *testing.T) {
	arr := typedarray.NewFloat64([]float64{0.5, -1, 8})
	col, err := matrix.ColumnVector(arr)
	require.NoError(t, err)

	back, err := matrix.ToArray(col)
	require.NoError(t, err)
	assert.True(t, arr.Equal(back))

	_, err = matrix.ToArray(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.ToArray(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestQuietViews(t *testing.T) {
	var buf bytes.Buffer
	logger := typedarray.NewTextLogger(&buf, slog.LevelWarn)
	big := typedarray.NewInt64([]int64{1<<53 + 1}, typedarray.WithLogger(logger))

	_, err := matrix.RowVector(big, matrix.WithQuietViews())
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = matrix.RowVector(big)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "possible loss of precision")
}
