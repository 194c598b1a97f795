package cli

import (
	"context"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/djbarker/dango/pkg/imagetile"
)

// labelOpts holds the command-line flags for the label command.
type labelOpts struct {
	out      string
	text     string
	loc      string // anchor, e.g. "top left" or the "bottom" alias
	font     string // font name or path, "" = config default or built-in list
	size     int    // font size in pixels, 0 = automatic
	noStroke bool
	invert   bool
}

func newLabelCmd(loadCfg func() (config, error)) *cobra.Command {
	var opts labelOpts

	cmd := &cobra.Command{
		Use:   "label [image]",
		Short: "Draw a text label onto an image",
		Long: `Label stamps text onto an image at one of nine anchor positions
(e.g. "top-left", "center", "bottom"). By default the text is white with a
black outline and sized relative to the image height.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCfg()
			if err != nil {
				return err
			}
			return runLabel(cmd.Context(), args[0], &opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output image path (required)")
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "label text (required)")
	cmd.Flags().StringVarP(&opts.loc, "loc", "l", "bottom", "label position")
	cmd.Flags().StringVar(&opts.font, "font", "", "font name or path to a font file")
	cmd.Flags().IntVar(&opts.size, "size", 0, "font size in pixels (default imageHeight/15)")
	cmd.Flags().BoolVar(&opts.noStroke, "no-stroke", false, "disable the text outline")
	cmd.Flags().BoolVar(&opts.invert, "invert", false, "black text with a white outline")
	_ = cmd.MarkFlagRequired("out")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func runLabel(ctx context.Context, input string, opts *labelOpts, cfg config) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	anchor, err := imagetile.ParseAnchor(opts.loc)
	if err != nil {
		return err
	}

	var labelOpts []imagetile.LabelOption
	font := opts.font
	if font == "" {
		font = cfg.Font
	}
	if font != "" {
		labelOpts = append(labelOpts, imagetile.WithFont(font))
	}
	if opts.size > 0 {
		labelOpts = append(labelOpts, imagetile.WithFontSize(opts.size))
	}
	if opts.noStroke {
		labelOpts = append(labelOpts, imagetile.WithoutStroke())
	}
	if opts.invert {
		labelOpts = append(labelOpts, imagetile.Inverted())
	}

	labeled, err := imagetile.Label(imagetile.File(input), opts.text, anchor, labelOpts...)
	if err != nil {
		return err
	}

	if err := imaging.Save(labeled, opts.out); err != nil {
		return fmt.Errorf("save %q: %w", opts.out, err)
	}

	p.done(fmt.Sprintf("Labeled %s into %s", input, opts.out))
	printWrote(opts.out, labeled.Bounds().Dx(), labeled.Bounds().Dy())
	return nil
}
