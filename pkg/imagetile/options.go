package imagetile

import "image/color"

// tileOptions collects the optional knobs for Tile and TileAuto.
type tileOptions struct {
	background color.Color
	resolution *[2]int // final canvas size, nil = natural size
	layout     *[2]int // explicit (rows, cols) for TileAuto
}

// Option configures Tile or TileAuto.
type Option func(*tileOptions)

func defaultTileOptions() tileOptions {
	return tileOptions{background: color.White}
}

// WithBackground sets the fill color for canvas regions not covered by an
// image. The default is white.
func WithBackground(c color.Color) Option {
	return func(o *tileOptions) {
		o.background = c
	}
}

// WithResolution resizes the finished canvas to exactly width x height
// using Lanczos resampling. Without it the canvas keeps its natural size.
func WithResolution(width, height int) Option {
	return func(o *tileOptions) {
		o.resolution = &[2]int{width, height}
	}
}

// WithLayout fixes the (rows, cols) shape used by TileAuto instead of the
// automatic near-square layout. rows*cols must be at least the number of
// items; excess cells are left as background. Tile ignores this option.
func WithLayout(rows, cols int) Option {
	return func(o *tileOptions) {
		o.layout = &[2]int{rows, cols}
	}
}
