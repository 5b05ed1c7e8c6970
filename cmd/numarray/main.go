// SPDX-License-Identifier: MIT

// Command numarray unifies, inspects and transforms typed arrays given as
// command-line tokens.
//
// Tokens are parsed with typedarray.ParseScalar: bare integers are Int64,
// bare floats Float64, bare complex numbers Complex, anything else Text;
// a "kind:" prefix forces a kind (i8:, i16:, i32:, i64:, f32:, f64:, dec:,
// wide:, c:, ch:, s:).
//
//	numarray unify i32:1 2.5 i8:3        # Float64 [1, 2.5, 3]
//	numarray stats 1 2 3 4
//	numarray sort 3 1 2
//	numarray mul --scalar 2 1 2 3
//	numarray concat 1 2 --with x,y
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "unify token...",
		Short: "Unify tokens into one array and print its kind and provenance",
		Args:  cobra.MinimumNArgs(1),
		RunE:  unifyTokens}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "stats token...",
		Short: "Print max, min, sum, product and mean of the unified array",
		Args:  cobra.MinimumNArgs(1),
		RunE:  showStats}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "sort token...",
		Short: "Sort the unified array and print the permutation used",
		Args:  cobra.MinimumNArgs(1),
		RunE:  sortTokens}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "reverse token...",
		Short: "Reverse the unified array",
		Args:  cobra.MinimumNArgs(1),
		RunE:  reverseTokens}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "shuffle token...",
		Short: "Shuffle the unified array with a seeded permutation",
		Args:  cobra.MinimumNArgs(1),
		RunE:  shuffleTokens}
	cmd.Flags().Int64("seed", 0, "permutation seed (0: fixed default seed)")
	root.AddCommand(cmd)

	for _, name := range []string{"add", "sub", "mul", "div"} {
		cmd = &cobra.Command{
			Use:   name + " token...",
			Short: "Elementwise " + name + " against --scalar or an equal-length --with array",
			Args:  cobra.MinimumNArgs(1),
			RunE:  arithmetic}
		cmd.Flags().String("scalar", "", "scalar operand token")
		cmd.Flags().StringSlice("with", nil, "array operand tokens (comma separated)")
		root.AddCommand(cmd)
	}

	cmd = &cobra.Command{
		Use:   "concat token...",
		Short: "Concatenate the unified array with the --with array",
		Args:  cobra.MinimumNArgs(1),
		RunE:  concatTokens}
	cmd.Flags().StringSlice("with", nil, "tokens to append (comma separated)")
	cmd.MarkFlagRequired("with")
	root.AddCommand(cmd)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "numarray",
		Short:         "Typed numeric arrays with kind unification",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("quiet", "q", false, "silence precision-loss diagnostics")
	root.PersistentFlags().String("log-format", "text", "diagnostic format, 'text' or 'json'")
	root.PersistentFlags().String("log-level", "warn", "diagnostic level: debug, info, warn or error")
	addCommands(root)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
