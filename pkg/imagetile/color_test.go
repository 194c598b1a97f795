package imagetile

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor_Named(t *testing.T) {
	tests := []struct {
		name string
		want color.NRGBA
	}{
		{"white", color.NRGBA{255, 255, 255, 255}},
		{"black", color.NRGBA{0, 0, 0, 255}},
		{"RED", color.NRGBA{255, 0, 0, 255}},
		{" navy ", color.NRGBA{0, 0, 128, 255}},
		{"grey", color.NRGBA{128, 128, 128, 255}},
	}

	for _, tt := range tests {
		c, err := ParseColor(tt.name)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", tt.name, err)
		}
		if c != tt.want {
			t.Errorf("ParseColor(%q): got %v, want %v", tt.name, c, tt.want)
		}
	}
}

func TestParseColor_Hex(t *testing.T) {
	tests := []struct {
		hex  string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{255, 0, 0, 255}},
		{"#FF8800", color.NRGBA{255, 136, 0, 255}},
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"#f00", color.NRGBA{255, 0, 0, 255}},
		{"#ff000080", color.NRGBA{255, 0, 0, 128}},
	}

	for _, tt := range tests {
		c, err := ParseColor(tt.hex)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", tt.hex, err)
		}
		if c != tt.want {
			t.Errorf("ParseColor(%q): got %v, want %v", tt.hex, c, tt.want)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, s := range []string{"", "nope", "#12345", "#gggggg", "#12", "rgb(1,2,3)"} {
		if _, err := ParseColor(s); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseColor(%q): got %v, want ErrInvalidArgument", s, err)
		}
	}
}
