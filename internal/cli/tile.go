package cli

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/djbarker/dango/pkg/imagetile"
)

// tileOpts holds the command-line flags for the tile command.
type tileOpts struct {
	out        string // output file path, format chosen by extension
	layout     []int  // explicit (rows, cols), empty = automatic near-square
	resolution []int  // exact output (width, height), empty = natural size
	fit        []int  // per-input maximum (width, height) before tiling
	bkgColor   string // background color name or hex, "" = config default
}

func newTileCmd(loadCfg func() (config, error)) *cobra.Command {
	var opts tileOpts

	cmd := &cobra.Command{
		Use:   "tile [images...]",
		Short: "Tile images into a single montage",
		Long: `Tile composes the given images into one image, laid out in a grid as
close to square as the image count allows. Rows and columns size themselves
to their largest member and any shortfall is filled with the background
color. The output format is chosen by the file extension.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCfg()
			if err != nil {
				return err
			}
			return runTile(cmd.Context(), args, &opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output image path (required)")
	cmd.Flags().IntSliceVarP(&opts.layout, "layout", "l", nil, "explicit grid shape as ROWS,COLS")
	cmd.Flags().IntSliceVarP(&opts.resolution, "resolution", "r", nil, "final output size as WIDTH,HEIGHT")
	cmd.Flags().IntSliceVar(&opts.fit, "fit", nil, "shrink each input to fit WIDTH,HEIGHT before tiling")
	cmd.Flags().StringVarP(&opts.bkgColor, "bkg-color", "b", "", `background color, name or hex (default "white")`)
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runTile(ctx context.Context, inputs []string, opts *tileOpts, cfg config) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	bkgName := opts.bkgColor
	if bkgName == "" {
		bkgName = cfg.Background
	}
	bkg, err := imagetile.ParseColor(bkgName)
	if err != nil {
		return err
	}

	fitW, fitH := cfg.FitWidth, cfg.FitHeight
	if len(opts.fit) > 0 {
		if fitW, fitH, err = intPair("fit", opts.fit); err != nil {
			return err
		}
	}

	var items []imagetile.Source
	if fitW > 0 && fitH > 0 {
		// Pre-shrink each input; the tiler itself never scales cells.
		for _, path := range inputs {
			img, err := imaging.Open(path)
			if err != nil {
				return fmt.Errorf("open %q: %w", path, err)
			}
			logger.Debug("loaded input", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
			items = append(items, imagetile.FromImage(fitWithin(img, fitW, fitH)))
		}
	} else {
		items = imagetile.Files(inputs...)
	}

	options := []imagetile.Option{imagetile.WithBackground(bkg)}
	if len(opts.layout) > 0 {
		rows, cols, err := intPair("layout", opts.layout)
		if err != nil {
			return err
		}
		options = append(options, imagetile.WithLayout(rows, cols))
	}
	if len(opts.resolution) > 0 {
		w, h, err := intPair("resolution", opts.resolution)
		if err != nil {
			return err
		}
		options = append(options, imagetile.WithResolution(w, h))
	}

	canvas, err := imagetile.TileAuto(items, options...)
	if err != nil {
		return err
	}

	if err := imaging.Save(canvas, opts.out); err != nil {
		return fmt.Errorf("save %q: %w", opts.out, err)
	}

	p.done(fmt.Sprintf("Tiled %d images into %s", len(inputs), opts.out))
	printWrote(opts.out, canvas.Bounds().Dx(), canvas.Bounds().Dy())
	return nil
}

// fitWithin shrinks img to fit inside a maxW x maxH box, preserving aspect
// ratio. Images already inside the box are returned unchanged.
func fitWithin(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return img
	}

	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	return transform.Resize(img, nw, nh, transform.Lanczos)
}

// intPair validates a flag given as two comma-separated positive integers.
func intPair(name string, vals []int) (int, int, error) {
	if len(vals) != 2 {
		return 0, 0, fmt.Errorf("--%s wants exactly two values, got %d", name, len(vals))
	}
	if vals[0] < 1 || vals[1] < 1 {
		return 0, 0, fmt.Errorf("--%s values must be positive, got %d,%d", name, vals[0], vals[1])
	}
	return vals[0], vals[1], nil
}
