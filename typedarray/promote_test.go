// SPDX-License-Identifier: MIT

package typedarray_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numarray/typedarray"
)

func TestResolveLadder(t *testing.T) {
	const (
		F64 = typedarray.Float64
		F32 = typedarray.Float32
		I64 = typedarray.Int64
		I32 = typedarray.Int32
		I16 = typedarray.Int16
		I8  = typedarray.Int8
		Dec = typedarray.Decimal
		W   = typedarray.Wide
		C   = typedarray.Complex
		Ch  = typedarray.Char
		S   = typedarray.Text
		U   = typedarray.Unsupported
	)
	cases := []struct {
		name  string
		kinds []typedarray.Kind
		want  typedarray.Kind
	}{
		{"text wins over everything", []typedarray.Kind{I32, S}, S},
		{"text wins over unsupported", []typedarray.Kind{U, S}, S},
		{"complex beats decimal", []typedarray.Kind{Dec, C, F64}, C},
		{"complex wins over unsupported", []typedarray.Kind{C, U}, C},
		{"decimal beats floats", []typedarray.Kind{F64, Dec}, Dec},
		{"wide with float goes decimal", []typedarray.Kind{F64, W}, Dec},
		{"wide with float32 goes decimal", []typedarray.Kind{W, F32, I8}, Dec},
		{"wide with ints stays wide", []typedarray.Kind{W, I8, I64}, W},
		{"floats dominate ints", []typedarray.Kind{F32, I8}, F64},
		{"narrow ints widen", []typedarray.Kind{I16, I8}, I64},
		{"char alone", []typedarray.Kind{Ch, Ch}, Ch},
		{"char with ints", []typedarray.Kind{Ch, I32}, I64},
		{"single float32", []typedarray.Kind{F32}, F64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := typedarray.Resolve(tc.kinds)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			// Order independence.
			rev := make([]typedarray.Kind, len(tc.kinds))
			for i, k := range tc.kinds {
				rev[len(rev)-1-i] = k
			}
			got, err = typedarray.Resolve(rev)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveRejects(t *testing.T) {
	_, err := typedarray.Resolve(nil)
	require.ErrorIs(t, err, typedarray.ErrUnrecognizedInputKind)

	_, err = typedarray.Resolve([]typedarray.Kind{typedarray.Int64, typedarray.Unsupported})
	require.ErrorIs(t, err, typedarray.ErrUnrecognizedInputKind)

	_, err = typedarray.Resolve([]typedarray.Kind{typedarray.Kind(99)})
	require.ErrorIs(t, err, typedarray.ErrUnrecognizedInputKind)
}

func TestUnifyExamples(t *testing.T) {
	arr, err := typedarray.Unify([]typedarray.Scalar{typedarray.Int32Value(1), typedarray.TextValue("x")}, quiet())
	require.NoError(t, err)
	assert.Equal(t, typedarray.Text, arr.Kind())
	s, err := arr.Strings()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "x"}, s)
	assert.Equal(t, []typedarray.Kind{typedarray.Int32, typedarray.Text}, arr.OriginalKinds())

	arr, err = typedarray.Unify([]typedarray.Scalar{typedarray.Float64Value(1.5), typedarray.WideValue(10)}, quiet())
	require.NoError(t, err)
	assert.Equal(t, typedarray.Decimal, arr.Kind())
	d, err := arr.Decimals()
	require.NoError(t, err)
	assert.True(t, d[0].Equal(decimal.RequireFromString("1.5")))
	assert.True(t, d[1].Equal(decimal.NewFromInt(10)))

	arr, err = typedarray.Unify([]typedarray.Scalar{typedarray.Int8Value(-1), typedarray.Float32Value(0.5)}, quiet())
	require.NoError(t, err)
	assert.Equal(t, "[-1, 0.5]", arr.String())
}

func TestUnifyRejects(t *testing.T) {
	_, err := typedarray.Unify(nil, quiet())
	require.ErrorIs(t, err, typedarray.ErrUnrecognizedInputKind)

	_, err = typedarray.Unify([]typedarray.Scalar{typedarray.Int64Value(1), typedarray.UnsupportedValue(uint(2))}, quiet())
	require.ErrorIs(t, err, typedarray.ErrUnrecognizedInputKind)

	// Text dominates, but the unsupported element still has no conversion.
	_, err = typedarray.Unify([]typedarray.Scalar{typedarray.TextValue("a"), typedarray.UnsupportedValue(uint(2))}, quiet())
	require.ErrorIs(t, err, typedarray.ErrUnsupportedKindConversion)

	// Char 'a' has no Int64 reading.
	_, err = typedarray.Unify([]typedarray.Scalar{typedarray.CharValue('a'), typedarray.Int64Value(1)}, quiet())
	require.ErrorIs(t, err, typedarray.ErrUnsupportedKindConversion)

	// Complex cannot be read as anything narrower, but it dominates instead.
	arr, err := typedarray.Unify([]typedarray.Scalar{typedarray.ComplexValue(1i), typedarray.Int64Value(2)}, quiet())
	require.NoError(t, err)
	assert.Equal(t, typedarray.Complex, arr.Kind())
}

func TestFromValues(t *testing.T) {
	arr, err := typedarray.FromValues([]interface{}{int32(1), 2.5, int8(3)}, quiet())
	require.NoError(t, err)
	assert.Equal(t, typedarray.Float64, arr.Kind())
	assert.Equal(t, "[1, 2.5, 3]", arr.String())

	_, err = typedarray.FromValues([]interface{}{1, uint16(2)}, quiet())
	require.ErrorIs(t, err, typedarray.ErrUnrecognizedInputKind)
}
