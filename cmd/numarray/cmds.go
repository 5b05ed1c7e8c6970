// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numarray/permute"
	"github.com/katalvlaran/numarray/typedarray"
)

var (
	ErrBadLogFormat = errors.New("unknown log format")
	ErrNoOperand    = errors.New("exactly one of --scalar or --with is required")
)

// Represents the state used when processing a command.
type Action struct {
	cmd  *cobra.Command
	opts []typedarray.Option
}

func newAction(cmd *cobra.Command) (*Action, error) {
	a := &Action{cmd: cmd}
	logger, err := a.newLogger()
	if err != nil {
		return nil, err
	}
	a.opts = append(a.opts, typedarray.WithLogger(logger))
	if a.getBool("quiet") {
		a.opts = append(a.opts, typedarray.WithQuietConversions())
	}
	return a, nil
}

func (a *Action) getBool(name string) bool {
	result, _ := a.cmd.Flags().GetBool(name)
	return result
}

func (a *Action) getInt64(name string) int64 {
	result, _ := a.cmd.Flags().GetInt64(name)
	return result
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

func (a *Action) getStringSlice(name string) []string {
	result, _ := a.cmd.Flags().GetStringSlice(name)
	return result
}

func (a *Action) out() io.Writer {
	return a.cmd.OutOrStdout()
}

// newLogger builds the diagnostic logger from --log-format and --log-level.
// Diagnostics go to stderr so stdout carries only results.
func (a *Action) newLogger() (*typedarray.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.getString("log-level"))); err != nil {
		return nil, errors.Wrap(err, "log-level")
	}
	w := a.cmd.ErrOrStderr()
	switch format := a.getString("log-format"); format {
	case "text":
		return typedarray.NewTextLogger(w, level), nil
	case "json":
		return typedarray.NewJSONLogger(w, level), nil
	default:
		return nil, errors.Wrapf(ErrBadLogFormat, "%q", format)
	}
}

// unify parses tokens and unifies them under the action's options.
func (a *Action) unify(tokens []string) (*typedarray.Array, error) {
	vals, err := typedarray.ParseScalars(tokens)
	if err != nil {
		return nil, err
	}
	return typedarray.Unify(vals, a.opts...)
}

func (a *Action) printArray(arr *typedarray.Array) {
	fmt.Fprintf(a.out(), "%s %s\n", arr.Kind(), arr)
}

func (a *Action) printPerm(perm []int) {
	fmt.Fprintf(a.out(), "perm %v\n", perm)
}

func unifyTokens(cmd *cobra.Command, args []string) error {
	action, err := newAction(cmd)
	if err != nil {
		return err
	}
	arr, err := action.unify(args)
	if err != nil {
		return err
	}
	action.printArray(arr)
	fmt.Fprintf(action.out(), "from %v\n", arr.OriginalKinds())
	return nil
}

func showStats(cmd *cobra.Command, args []string) error {
	action, err := newAction(cmd)
	if err != nil {
		return err
	}
	arr, err := action.unify(args)
	if err != nil {
		return err
	}
	action.printArray(arr)

	w := action.out()
	show := func(name string, v typedarray.Scalar, err error) {
		if err != nil {
			fmt.Fprintf(w, "%-8s n/a\n", name)
			return
		}
		fmt.Fprintf(w, "%-8s %s\n", name, v)
	}
	total := func(name string, t typedarray.Total, err error) {
		show(name, t.Value, err)
		if err == nil && t.DemotedToFloat {
			fmt.Fprintf(w, "%-8s demoted to Float64 after int64 overflow\n", "")
		}
	}

	v, err := arr.Max()
	show("max", v, err)
	v, err = arr.Min()
	show("min", v, err)
	t, err := arr.Sum()
	total("sum", t, err)
	t, err = arr.Product()
	total("product", t, err)
	v, err = arr.Mean()
	show("mean", v, err)
	return nil
}

func sortTokens(cmd *cobra.Command, args []string) error {
	action, err := newAction(cmd)
	if err != nil {
		return err
	}
	arr, err := action.unify(args)
	if err != nil {
		return err
	}
	sorted, perm, err := arr.Sort()
	if err != nil {
		return err
	}
	action.printArray(sorted)
	action.printPerm(perm)
	return nil
}

func reverseTokens(cmd *cobra.Command, args []string) error {
	action, err := newAction(cmd)
	if err != nil {
		return err
	}
	arr, err := action.unify(args)
	if err != nil {
		return err
	}
	rev, perm := arr.Reverse()
	action.printArray(rev)
	action.printPerm(perm)
	return nil
}

func shuffleTokens(cmd *cobra.Command, args []string) error {
	action, err := newAction(cmd)
	if err != nil {
		return err
	}
	arr, err := action.unify(args)
	if err != nil {
		return err
	}
	shuffled, perm, err := arr.Randomize(permute.New(action.getInt64("seed")))
	if err != nil {
		return err
	}
	action.printArray(shuffled)
	action.printPerm(perm)
	return nil
}

// arithmetic dispatches add/sub/mul/div on the command name.
func arithmetic(cmd *cobra.Command, args []string) error {
	action, err := newAction(cmd)
	if err != nil {
		return err
	}
	arr, err := action.unify(args)
	if err != nil {
		return err
	}
	scalar, with := action.getString("scalar"), action.getStringSlice("with")
	if (scalar == "") == (len(with) == 0) {
		return errors.Wrap(ErrNoOperand, cmd.Name())
	}

	var result *typedarray.Array
	if scalar != "" {
		s, err := typedarray.ParseScalar(scalar)
		if err != nil {
			return err
		}
		switch cmd.Name() {
		case "add":
			result, err = arr.PlusScalar(s)
		case "sub":
			result, err = arr.MinusScalar(s)
		case "mul":
			result, err = arr.TimesScalar(s)
		default:
			result, err = arr.OverScalar(s)
		}
		if err != nil {
			return err
		}
	} else {
		other, err := action.unify(with)
		if err != nil {
			return err
		}
		switch cmd.Name() {
		case "add":
			result, err = arr.Plus(other)
		case "sub":
			result, err = arr.Minus(other)
		case "mul":
			result, err = arr.Times(other)
		default:
			result, err = arr.Over(other)
		}
		if err != nil {
			return err
		}
	}
	action.printArray(result)
	return nil
}

func concatTokens(cmd *cobra.Command, args []string) error {
	action, err := newAction(cmd)
	if err != nil {
		return err
	}
	arr, err := action.unify(args)
	if err != nil {
		return err
	}
	other, err := action.unify(action.getStringSlice("with"))
	if err != nil {
		return err
	}
	joined, err := arr.Concatenate(other)
	if err != nil {
		return err
	}
	action.printArray(joined)
	fmt.Fprintf(action.out(), "from %v\n", joined.OriginalKinds())
	return nil
}
