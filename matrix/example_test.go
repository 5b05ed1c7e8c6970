// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/numarray/matrix"
	"github.com/katalvlaran/numarray/typedarray"
)

// ExampleRowVector shows the dot product of an array with itself through
// the row/column adapters.
func ExampleRowVector() {
	arr := typedarray.NewInt8([]int8{1, 2, 3})

	row, _ := matrix.RowVector(arr)
	col, _ := matrix.ColumnVector(arr)
	dot, _ := matrix.Mul(row, col)

	fmt.Print(row)
	fmt.Print(dot)
	// Output:
	// [1, 2, 3]
	// [14]
}
