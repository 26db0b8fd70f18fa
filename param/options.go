// SPDX-License-Identifier: MIT

// Package param: functional configuration.
//
//   - Option / Options follow the functional-options pattern; Options fields
//     are unexported and resolved through gatherOptions.
//   - WithX constructors panic on nonsensical values (programmer error).
//   - Defaults live in constants below and are the single source of truth.
package param

import "math"

const (
	// DefaultStrength is the sigmoid sharpness used to anti-alias shape
	// boundaries. Higher means sharper. The argument of the sigmoid is the
	// signed squared distance in units of dL², so 0.1 spreads the boundary
	// over roughly ten squared cells.
	DefaultStrength = 0.1

	// DefaultRegionCheck enables the binary (0/1) design-region validation.
	DefaultRegionCheck = true
)

const panicStrengthInvalid = "param: WithStrength: strength must be finite and > 0"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	strength    float64 // DefaultStrength
	regionCheck bool    // DefaultRegionCheck
}

// WithStrength sets the sigmoid sharpness for shape parameterizations.
// Panics if s is NaN, ±Inf or ≤ 0.
func WithStrength(s float64) Option {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		panic(panicStrengthInvalid)
	}

	return func(o *Options) { o.strength = s }
}

// WithRegionCheck toggles validation of the design region. With the check
// off, cells holding values other than 0 and 1 belong to neither mask and
// come out as 0.
func WithRegionCheck(on bool) Option {
	return func(o *Options) { o.regionCheck = on }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		strength:    DefaultStrength,
		regionCheck: DefaultRegionCheck,
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
