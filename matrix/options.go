// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for array→matrix adapters and
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - validateNaNInf controls whether Set() and adapter ingestion reject
//     NaN/±Inf. Float arrays may legally hold them, so adapters fed such
//     arrays need WithNoValidateNaNInf().
//   - quiet forwards typedarray.Quiet() to the Float64/Complex views taken by
//     adapters, silencing precision-loss diagnostics for that read.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultQuietViews controls whether adapter views log precision loss.
	DefaultQuietViews = false
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool
	quiet          bool
}

// WithNoValidateNaNInf admits NaN and ±Inf in Set and adapter ingestion.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithQuietViews suppresses precision-loss diagnostics while an adapter
// reads the Float64 or Complex view of an array.
func WithQuietViews() Option {
	return func(o *Options) { o.quiet = true }
}

func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		quiet:          DefaultQuietViews,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
