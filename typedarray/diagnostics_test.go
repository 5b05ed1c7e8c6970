// SPDX-License-Identifier: MIT

package typedarray_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numarray/typedarray"
)

func newBufferLogger(buf *bytes.Buffer) typedarray.Option {
	return typedarray.WithLogger(typedarray.NewTextLogger(buf, slog.LevelDebug))
}

func TestPrecisionLossLogged(t *testing.T) {
	var buf bytes.Buffer
	arr := typedarray.NewFloat64([]float64{0.1, 0.5, 0.2}, newBufferLogger(&buf))

	_, err := arr.Float32s()
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "possible loss of precision")
	assert.Contains(t, out, "op=Float32s")
	assert.Contains(t, out, "from=Float64")
	assert.Contains(t, out, "to=Float32")
	assert.Contains(t, out, "lossy=2")
	assert.Contains(t, out, "total=3")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("possible loss of precision")), "one record per call")
}

func TestExactConversionsStaySilent(t *testing.T) {
	var buf bytes.Buffer
	arr := typedarray.NewInt64([]int64{1, -2, 1 << 53}, newBufferLogger(&buf))

	_, err := arr.Float64s()
	require.NoError(t, err)
	_, err = arr.Strings()
	require.NoError(t, err)
	_, err = typedarray.NewFloat64([]float64{0.5}, newBufferLogger(&buf)).Float32s()
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestQuietSuppressesWithoutChangingValues(t *testing.T) {
	var buf bytes.Buffer
	arr := typedarray.NewInt64([]int64{300, 5}, newBufferLogger(&buf))

	quietVals, err := arr.Int8s(typedarray.Quiet())
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	loudVals, err := arr.Int8s()
	require.NoError(t, err)
	assert.NotEmpty(t, buf.String())
	assert.Equal(t, loudVals, quietVals)

	// Per-call suppression leaves no state behind.
	buf.Reset()
	_, err = arr.View(typedarray.Int8)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "op=View")
}

func TestInstanceQuietIsInherited(t *testing.T) {
	var buf bytes.Buffer
	arr := typedarray.NewFloat64([]float64{1.5, 2.5}, newBufferLogger(&buf), typedarray.WithQuietConversions())

	rev, _ := arr.Reverse()
	_, err := rev.Int64s()
	require.NoError(t, err)
	sum, err := arr.Plus(typedarray.NewFloat64([]float64{0.25, 0.25}))
	require.NoError(t, err)
	_, err = sum.Int16s()
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestUnifyAndArithmeticLog(t *testing.T) {
	var buf bytes.Buffer
	_, err := typedarray.Unify([]typedarray.Scalar{
		typedarray.Int64Value(1<<53 + 1), typedarray.Float64Value(0.5),
	}, newBufferLogger(&buf))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "op=Unify")
	assert.Contains(t, buf.String(), "from=Int64")

	buf.Reset()
	big := typedarray.NewInt64([]int64{1<<53 + 1}, newBufferLogger(&buf))
	_, err = big.PlusScalar(typedarray.Float64Value(0))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "op=Plus")
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := typedarray.NewJSONLogger(&buf, slog.LevelWarn)
	logger.LogPrecisionLoss("View", typedarray.Float64, typedarray.Int8, 1, 4)
	assert.Contains(t, buf.String(), `"msg":"possible loss of precision"`)
	assert.Contains(t, buf.String(), `"lossy":1`)

	buf.Reset()
	filtered := typedarray.NewJSONLogger(&buf, slog.LevelError)
	filtered.LogPrecisionLoss("View", typedarray.Float64, typedarray.Int8, 1, 4)
	assert.Empty(t, buf.String())
}

func TestLoggerConstructors(t *testing.T) {
	assert.NotNil(t, typedarray.NewLogger(nil))
	assert.NotNil(t, typedarray.DefaultLogger())

	noop := typedarray.NoopLogger()
	noop.LogPrecisionLoss("View", typedarray.Float64, typedarray.Int8, 1, 1)

	assert.Panics(t, func() { typedarray.WithLogger(nil) })
}
