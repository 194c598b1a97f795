package imagetile

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/flopp/go-findfont"
	"github.com/fogleman/gg"
)

// Anchor names a position on an image where a label is placed.
type Anchor string

// The nine canonical anchors. ParseAnchor also accepts the single-word
// aliases "top", "left", "center", "right" and "bottom", and dashes in
// place of spaces.
const (
	TopLeft      Anchor = "top left"
	TopCenter    Anchor = "top center"
	TopRight     Anchor = "top right"
	CenterLeft   Anchor = "center left"
	CenterCenter Anchor = "center center"
	CenterRight  Anchor = "center right"
	BottomLeft   Anchor = "bottom left"
	BottomCenter Anchor = "bottom center"
	BottomRight  Anchor = "bottom right"
)

var anchorAliases = map[string]Anchor{
	"top":    TopCenter,
	"left":   CenterLeft,
	"center": CenterCenter,
	"right":  CenterRight,
	"bottom": BottomCenter,
}

// ParseAnchor normalizes s to a canonical Anchor: dashes become spaces
// ("top-left" -> "top left") and aliases expand ("top" -> "top center").
// Parsing a canonical anchor returns it unchanged, so the function is
// idempotent. Unknown values return ErrInvalidArgument.
func ParseAnchor(s string) (Anchor, error) {
	name := strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(s, "-", " "))), " ")

	if a, ok := anchorAliases[name]; ok {
		return a, nil
	}

	switch a := Anchor(name); a {
	case TopLeft, TopCenter, TopRight,
		CenterLeft, CenterCenter, CenterRight,
		BottomLeft, BottomCenter, BottomRight:
		return a, nil
	}

	return "", fmt.Errorf("%w: unknown anchor %q", ErrInvalidArgument, s)
}

// labelOptions collects the optional knobs for Label.
type labelOptions struct {
	font   string // font name or path, "" = first available default
	size   int    // pixels, 0 = image height / 15
	stroke bool
	invert bool
}

// LabelOption configures Label.
type LabelOption func(*labelOptions)

// WithFont selects the label font, either a path to a .ttf/.otf file or a
// font name resolved against the system font directories.
func WithFont(nameOrPath string) LabelOption {
	return func(o *labelOptions) {
		o.font = nameOrPath
	}
}

// WithFontSize fixes the font size in pixels instead of the default of one
// fifteenth of the image height.
func WithFontSize(px int) LabelOption {
	return func(o *labelOptions) {
		o.size = px
	}
}

// WithoutStroke disables the outline around the label text.
func WithoutStroke() LabelOption {
	return func(o *labelOptions) {
		o.stroke = false
	}
}

// Inverted draws black text with a white outline instead of the default
// white text with a black outline.
func Inverted() LabelOption {
	return func(o *labelOptions) {
		o.invert = true
	}
}

// Label draws text onto a copy of the source image at the given anchor.
//
// The font size defaults to imageHeight/15 and the text is inset from the
// image edge by one glyph box so labels do not touch the border. Text is
// white with a black outline (swap with Inverted); the outline width scales
// with the font size. The input image is not modified.
func Label(src Source, text string, anchor Anchor, opts ...LabelOption) (*image.NRGBA, error) {
	o := labelOptions{stroke: true}
	for _, opt := range opts {
		opt(&o)
	}

	anchor, err := ParseAnchor(string(anchor))
	if err != nil {
		return nil, err
	}

	img, err := src.load()
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	size := o.size
	if size <= 0 {
		size = bounds.Dy() / 15
	}
	if size < 1 {
		size = 1
	}

	fontPath, err := resolveFontPath(o.font)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContextForImage(img)
	if err := dc.LoadFontFace(fontPath, float64(size)); err != nil {
		return nil, fmt.Errorf("load font %q: %w", fontPath, err)
	}

	// Inset the anchor point by one glyph box from the image edge.
	gw, gh := dc.MeasureString("#")
	x, y, ax, ay := anchorPlacement(anchor, float64(bounds.Dx()), float64(bounds.Dy()), gw, gh)

	textColor, strokeColor := color.Color(color.White), color.Color(color.Black)
	if o.invert {
		textColor, strokeColor = strokeColor, textColor
	}

	if o.stroke {
		sw := size / 15
		if sw < 1 {
			sw = 1
		}
		dc.SetColor(strokeColor)
		for dy := -sw; dy <= sw; dy++ {
			for dx := -sw; dx <= sw; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				dc.DrawStringAnchored(text, x+float64(dx), y+float64(dy), ax, ay)
			}
		}
	}

	dc.SetColor(textColor)
	dc.DrawStringAnchored(text, x, y, ax, ay)

	return imaging.Clone(dc.Image()), nil
}

// anchorPlacement maps an anchor to the draw position and the string anchor
// fractions used by gg.DrawStringAnchored (ax: 0 left edge .. 1 right edge;
// ay: 1 top of text at y .. 0 bottom of text at y).
func anchorPlacement(a Anchor, width, height, insetX, insetY float64) (x, y, ax, ay float64) {
	parts := strings.Fields(string(a))
	vert, horiz := parts[0], parts[1]

	switch horiz {
	case "left":
		x, ax = insetX, 0
	case "center":
		x, ax = width/2, 0.5
	case "right":
		x, ax = width-insetX, 1
	}

	switch vert {
	case "top":
		y, ay = insetY, 1
	case "center":
		y, ay = height/2, 0.5
	case "bottom":
		y, ay = height-insetY, 0
	}

	return x, y, ax, ay
}

// defaultFonts are tried in order when no font is requested.
var defaultFonts = []string{
	"NotoSans-BoldItalic.ttf",
	"NotoSans-Bold.ttf",
	"DejaVuSans-Bold.ttf",
	"DejaVuSans.ttf",
	"Arial.ttf",
}

// resolveFontPath turns a font name or path into a font file path. An empty
// name tries the defaults in order.
func resolveFontPath(font string) (string, error) {
	if font == "" {
		for _, name := range defaultFonts {
			if path, err := findfont.Find(name); err == nil {
				return path, nil
			}
		}
		return "", fmt.Errorf("no default font found (tried %s)", strings.Join(defaultFonts, ", "))
	}

	if _, err := os.Stat(font); err == nil {
		return font, nil
	}

	path, err := findfont.Find(font)
	if err != nil {
		return "", fmt.Errorf("resolve font %q: %w", font, err)
	}
	return path, nil
}
