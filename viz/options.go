// SPDX-License-Identifier: MIT

package viz

import "gonum.org/v1/plot/vg"

const (
	// DefaultColors is the number of palette steps.
	DefaultColors = 64

	// DefaultWidth and DefaultHeight are the saved image size.
	DefaultWidth  = 5 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

const (
	panicColorsInvalid = "viz: WithColors: need at least 2 colors"
	panicSizeInvalid   = "viz: WithSize: width and height must be > 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective rendering configuration.
type Options struct {
	title         string
	width, height vg.Length
	colors        int
}

// WithTitle sets the plot title.
func WithTitle(s string) Option {
	return func(o *Options) { o.title = s }
}

// WithSize sets the saved image size. Panics if either side is ≤ 0.
func WithSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic(panicSizeInvalid)
	}

	return func(o *Options) { o.width, o.height = w, h }
}

// WithColors sets the number of palette steps. Panics if n < 2.
func WithColors(n int) Option {
	if n < 2 {
		panic(panicColorsInvalid)
	}

	return func(o *Options) { o.colors = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{width: DefaultWidth, height: DefaultHeight, colors: DefaultColors}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
