// SPDX-License-Identifier: MIT

package typedarray_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/numarray/permute"
	"github.com/katalvlaran/numarray/typedarray"
)

// ExampleUnify shows the promotion ladder: any Text element makes the whole
// array Text, and the original kinds are kept.
func ExampleUnify() {
	arr, err := typedarray.Unify([]typedarray.Scalar{
		typedarray.Int32Value(1),
		typedarray.TextValue("x"),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(arr.Kind(), arr)
	fmt.Println(arr.OriginalKinds())
	// Output:
	// Text ["1", "x"]
	// [Int32 Text]
}

// ExampleArray_Sum shows the overflow fallback of integral sums.
func ExampleArray_Sum() {
	arr := typedarray.NewInt64([]int64{math.MaxInt64, 1})
	total, _ := arr.Sum()
	fmt.Println(total.Value.Kind(), total.DemotedToFloat, total.Value)
	// Output:
	// Float64 true 9.223372036854776e+18
}

// ExampleArray_Sort returns the sorted array and the permutation used.
func ExampleArray_Sort() {
	arr := typedarray.NewFloat64([]float64{2.5, -1, 2.5, 0})
	sorted, perm, _ := arr.Sort()
	fmt.Println(sorted, perm)
	// Output:
	// [-1, 0, 2.5, 2.5] [1 3 0 2]
}

// ExampleArray_Plus shows a rejected operand kind.
func ExampleArray_Plus() {
	a := typedarray.NewFloat64([]float64{1})
	b := typedarray.NewChar([]rune{'z'})
	_, err := a.Plus(b)
	fmt.Println(errors.Is(err, typedarray.ErrIncompatibleOperandKinds))
	fmt.Println(err)
	// Output:
	// true
	// Plus: a Char cannot be added to a Float64: typedarray: incompatible operand kinds
}

// ExampleArray_Randomize shuffles deterministically with a seeded generator.
func ExampleArray_Randomize() {
	arr := typedarray.NewText([]string{"a", "b", "c"})
	first, _, _ := arr.Randomize(permute.New(7))
	second, _, _ := arr.Randomize(permute.New(7))
	fmt.Println(first.Equal(second), first.Len())
	// Output:
	// true 3
}

// ExampleParseScalars builds an array from command-line style tokens.
func ExampleParseScalars() {
	vals, _ := typedarray.ParseScalars([]string{"i8:1", "wide:2", "f32:0.5"})
	arr, _ := typedarray.Unify(vals, typedarray.WithQuietConversions())
	fmt.Println(arr.Kind(), arr)
	// Output:
	// Decimal [1, 2, 0.5]
}
