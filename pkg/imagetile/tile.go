package imagetile

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/djbarker/dango/pkg/gridlayout"
)

// Tile composes a ragged grid of images into one canvas.
//
// grid is a sequence of rows; rows may have different lengths and the
// longest one sets the column count. Column widths and row heights are the
// per-column and per-row maxima of the input sizes, the canvas is their sum,
// and each image is pasted at its cumulative offset without scaling. Cells
// not covered by an image stay at the background color (white unless
// WithBackground is given). WithResolution resizes the finished canvas.
//
// A grid with no rows, or with no cells at all, returns ErrInvalidArgument.
// A source that cannot be opened or decoded returns ErrImageLoad.
func Tile(grid [][]Source, opts ...Option) (*image.NRGBA, error) {
	o := defaultTileOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: grid has no rows", ErrInvalidArgument)
	}

	// Resolve every source up front so load failures abort before any
	// composition work.
	nrows := len(grid)
	ncols := 0
	images := make([][]image.Image, nrows)
	for r, row := range grid {
		images[r] = make([]image.Image, len(row))
		for c, src := range row {
			img, err := src.load()
			if err != nil {
				return nil, err
			}
			images[r][c] = img
		}
		if len(row) > ncols {
			ncols = len(row)
		}
	}
	if ncols == 0 {
		return nil, fmt.Errorf("%w: grid has no cells", ErrInvalidArgument)
	}

	// Each column is as wide as its widest image, each row as tall as its
	// tallest. Short rows simply do not contribute to later columns.
	widths := make([]int, ncols)
	heights := make([]int, nrows)
	for r := range images {
		for c, img := range images[r] {
			b := img.Bounds()
			if b.Dx() > widths[c] {
				widths[c] = b.Dx()
			}
			if b.Dy() > heights[r] {
				heights[r] = b.Dy()
			}
		}
	}

	canvas := imaging.New(sum(widths), sum(heights), o.background)

	y := 0
	for r := range images {
		x := 0
		for c, img := range images[r] {
			canvas = imaging.Paste(canvas, img, image.Pt(x, y))
			x += widths[c]
		}
		y += heights[r]
	}

	if o.resolution != nil {
		canvas = imaging.Resize(canvas, o.resolution[0], o.resolution[1], imaging.Lanczos)
	}

	return canvas, nil
}

// TileAuto composes a flat list of images into one canvas.
//
// The grid shape comes from gridlayout.Layout2D on the item count, or from
// WithLayout when given; an explicit layout with fewer cells than items
// returns ErrInvalidArgument. Items fill the grid in row-major order and any
// trailing cells are left as background. Composition then follows Tile.
func TileAuto(items []Source, opts ...Option) (*image.NRGBA, error) {
	o := defaultTileOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var rows, cols int
	if o.layout != nil {
		rows, cols = o.layout[0], o.layout[1]
		if rows < 1 || cols < 1 {
			return nil, fmt.Errorf("%w: layout %dx%d has non-positive dimension", ErrInvalidArgument, rows, cols)
		}
		if rows*cols < len(items) {
			return nil, fmt.Errorf("%w: layout %dx%d holds %d images but %d were given",
				ErrInvalidArgument, rows, cols, rows*cols, len(items))
		}
	} else {
		var err error
		rows, cols, err = gridlayout.Layout2D(len(items))
		if err != nil {
			return nil, fmt.Errorf("%w: no images to tile", ErrInvalidArgument)
		}
	}

	grid := make([][]Source, 0, rows)
	idx := 0
	for r := 0; r < rows; r++ {
		row := make([]Source, 0, cols)
		for c := 0; c < cols; c++ {
			if idx < len(items) {
				row = append(row, items[idx])
			}
			idx++
		}
		grid = append(grid, row)
	}

	return Tile(grid, opts...)
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
