package imagetile

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors is the basic web color set plus a few common synonyms.
var namedColors = map[string]color.NRGBA{
	"white":   {255, 255, 255, 255},
	"black":   {0, 0, 0, 255},
	"red":     {255, 0, 0, 255},
	"lime":    {0, 255, 0, 255},
	"green":   {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"aqua":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"fuchsia": {255, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"silver":  {192, 192, 192, 255},
	"maroon":  {128, 0, 0, 255},
	"olive":   {128, 128, 0, 255},
	"navy":    {0, 0, 128, 255},
	"teal":    {0, 128, 128, 255},
	"purple":  {128, 0, 128, 255},
	"orange":  {255, 165, 0, 255},
	"pink":    {255, 192, 203, 255},
	"brown":   {165, 42, 42, 255},
}

// ParseColor converts a color name ("white", "navy", ...) or a hex string
// ("#fff", "#ff8800", "#ff880080") to a color. Matching is case-insensitive.
// Unknown names and malformed hex return ErrInvalidArgument.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	if c, ok := namedColors[name]; ok {
		return c, nil
	}

	if strings.HasPrefix(name, "#") {
		return parseHexColor(name)
	}

	return nil, fmt.Errorf("%w: unknown color %q", ErrInvalidArgument, s)
}

func parseHexColor(hex string) (color.Color, error) {
	digits := hex[1:]

	// Expand the #rgb shorthand.
	if len(digits) == 3 {
		digits = strings.Repeat(string(digits[0]), 2) +
			strings.Repeat(string(digits[1]), 2) +
			strings.Repeat(string(digits[2]), 2)
	}

	switch len(digits) {
	case 6:
		c, err := colorful.Hex("#" + digits)
		if err != nil {
			return nil, fmt.Errorf("%w: bad hex color %q", ErrInvalidArgument, hex)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	case 8:
		val, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad hex color %q", ErrInvalidArgument, hex)
		}
		return color.NRGBA{
			R: uint8(val >> 24),
			G: uint8(val >> 16),
			B: uint8(val >> 8),
			A: uint8(val),
		}, nil
	default:
		return nil, fmt.Errorf("%w: hex color %q must have 3, 6 or 8 digits", ErrInvalidArgument, hex)
	}
}
