// SPDX-License-Identifier: MIT

package typedarray_test

import (
	"testing"

	"github.com/katalvlaran/numarray/permute"
	"github.com/katalvlaran/numarray/typedarray"
)

var (
	sinkArray *typedarray.Array
	sinkTotal typedarray.Total
	sinkPerm  []int
)

func benchInts(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64((i * 7919) % 1000)
	}
	return out
}

func BenchmarkSumFresh(b *testing.B) {
	vals := benchInts(4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkTotal, _ = typedarray.NewInt64(vals).Sum()
	}
}

func BenchmarkSumCached(b *testing.B) {
	arr := typedarray.NewInt64(benchInts(4096))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkTotal, _ = arr.Sum()
	}
}

func BenchmarkPlus(b *testing.B) {
	x := typedarray.NewInt64(benchInts(4096))
	y := typedarray.NewFloat64(make([]float64, 4096))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkArray, _ = x.Plus(y)
	}
}

func BenchmarkUnify(b *testing.B) {
	vals := make([]typedarray.Scalar, 1024)
	for i := range vals {
		if i%2 == 0 {
			vals[i] = typedarray.Int32Value(int32(i))
		} else {
			vals[i] = typedarray.Float64Value(float64(i) / 2)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkArray, _ = typedarray.Unify(vals)
	}
}

func BenchmarkSort(b *testing.B) {
	arr := typedarray.NewInt64(benchInts(512))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkArray, sinkPerm, _ = arr.Sort()
	}
}

func BenchmarkRandomize(b *testing.B) {
	arr := typedarray.NewInt64(benchInts(4096))
	g := permute.New(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkArray, sinkPerm, _ = arr.Randomize(g)
	}
}
