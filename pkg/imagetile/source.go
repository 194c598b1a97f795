package imagetile

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Source is an image input: either a file on disk or an image already in
// memory. Construct one with File or FromImage, or convert an arbitrary
// value with AsSource.
type Source interface {
	// load resolves the source to a decoded image.
	load() (image.Image, error)
}

type fileSource string

func (s fileSource) load() (image.Image, error) {
	img, err := imaging.Open(string(s))
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrImageLoad, string(s), err)
	}
	return img, nil
}

type memorySource struct {
	img image.Image
}

func (s memorySource) load() (image.Image, error) {
	return s.img, nil
}

// File returns a Source that reads and decodes the image at path when used.
// Decoding errors surface as ErrImageLoad at tiling time, not here.
func File(path string) Source {
	return fileSource(path)
}

// FromImage returns a Source wrapping an already-decoded image. The image is
// never mutated; its pixels are copied onto the canvas during composition.
func FromImage(img image.Image) Source {
	return memorySource{img: img}
}

// Files converts a list of paths to sources, preserving order.
func Files(paths ...string) []Source {
	srcs := make([]Source, len(paths))
	for i, p := range paths {
		srcs[i] = File(p)
	}
	return srcs
}

// AsSource converts v to a Source. Accepted types are Source, string
// (treated as a path) and image.Image; anything else returns
// ErrUnsupportedType.
func AsSource(v any) (Source, error) {
	switch v := v.(type) {
	case Source:
		return v, nil
	case string:
		return File(v), nil
	case image.Image:
		return FromImage(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}
