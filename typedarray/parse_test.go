// SPDX-License-Identifier: MIT

package typedarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numarray/typedarray"
)

func TestParseScalar(t *testing.T) {
	cases := []struct {
		token string
		kind  typedarray.Kind
		text  string
	}{
		{"42", typedarray.Int64, "42"},
		{"-7", typedarray.Int64, "-7"},
		{"2.5", typedarray.Float64, "2.5"},
		{"1e3", typedarray.Float64, "1000"},
		{"1+2i", typedarray.Complex, "(1+2i)"},
		{"abc", typedarray.Text, "abc"},
		{"a:b", typedarray.Text, "a:b"},
		{"i8:12", typedarray.Int8, "12"},
		{"i16:-300", typedarray.Int16, "-300"},
		{"i32:7", typedarray.Int32, "7"},
		{"i64:9", typedarray.Int64, "9"},
		{"f32:0.1", typedarray.Float32, "0.1"},
		{"f64:3", typedarray.Float64, "3"},
		{"dec:0.10", typedarray.Decimal, "0.1"},
		{"wide:5", typedarray.Wide, "5"},
		{"c:3", typedarray.Complex, "(3+0i)"},
		{"ch:x", typedarray.Char, "x"},
		{"s:42", typedarray.Text, "42"},
	}
	for _, tc := range cases {
		s, err := typedarray.ParseScalar(tc.token)
		require.NoError(t, err, tc.token)
		assert.Equal(t, tc.kind, s.Kind(), tc.token)
		assert.Equal(t, tc.text, s.String(), tc.token)
	}
}

func TestParseScalarRejects(t *testing.T) {
	_, err := typedarray.ParseScalar("i8:300")
	require.ErrorIs(t, err, typedarray.ErrUnsupportedKindConversion)

	_, err = typedarray.ParseScalar("i32:abc")
	require.ErrorIs(t, err, typedarray.ErrUnsupportedKindConversion)

	_, err = typedarray.ParseScalar("i64:1.5")
	require.ErrorIs(t, err, typedarray.ErrUnsupportedKindConversion)

	_, err = typedarray.ParseScalar("ch:xy")
	require.ErrorIs(t, err, typedarray.ErrIncompatibleOperandKinds)

	_, err = typedarray.ParseScalars([]string{"1", "i8:999"})
	require.ErrorIs(t, err, typedarray.ErrUnsupportedKindConversion)
	assert.Contains(t, err.Error(), "token 1")

	vals, err := typedarray.ParseScalars([]string{"1", "x"})
	require.NoError(t, err)
	assert.Len(t, vals, 2)
}
