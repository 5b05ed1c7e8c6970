// SPDX-License-Identifier: MIT

// Package typedarray: functional configuration for arrays and conversions.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - ConvertOption for per-call conversion policy,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state: precision-loss suppression is either an instance
//     option or a per-call option, so nothing has to be restored on exit.
//   - Derived arrays inherit the receiver's Options unchanged.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package typedarray

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultQuietConversions controls whether lossy narrowing conversions stay
	// silent. false => a precision-loss warning is logged once per conversion.
	DefaultQuietConversions = false

	// DefaultTrackProvenance controls whether homogeneous constructors record
	// per-element original kinds. Heterogeneous construction always records them.
	DefaultTrackProvenance = false
)

const panicNilLogger = "typedarray: WithLogger: logger must not be nil"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	logger          *Logger
	quiet           bool
	trackProvenance bool
}

// WithLogger routes precision-loss diagnostics to l.
// Panics when l is nil (programmer error); use NoopLogger to discard output.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}

// WithQuietConversions suppresses precision-loss diagnostics for every
// conversion performed on the array and on arrays derived from it.
// Suppression never changes a converted value.
func WithQuietConversions() Option {
	return func(o *Options) { o.quiet = true }
}

// WithTrackProvenance makes homogeneous constructors record the original kind
// of every element (OriginalKinds then returns a non-nil slice).
func WithTrackProvenance() Option {
	return func(o *Options) { o.trackProvenance = true }
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		logger:          DefaultLogger(),
		quiet:           DefaultQuietConversions,
		trackProvenance: DefaultTrackProvenance,
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// ---------- Per-call conversion policy ----------

// ConvertOption tunes a single conversion call.
type ConvertOption func(*convertConfig)

type convertConfig struct {
	quiet bool
}

// Quiet suppresses the precision-loss diagnostic for one conversion call.
// It is scoped to the call by construction: there is no state to restore.
func Quiet() ConvertOption {
	return func(c *convertConfig) { c.quiet = true }
}

func gatherConvert(base Options, opts ...ConvertOption) convertConfig {
	c := convertConfig{quiet: base.quiet}
	for _, fn := range opts {
		if fn != nil {
			fn(&c)
		}
	}
	return c
}
