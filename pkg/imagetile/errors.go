package imagetile

import "errors"

// Error kinds reported by this package. Wrapped errors carry detail about the
// failing input; classify with errors.Is.
var (
	// ErrInvalidArgument reports out-of-contract input, such as an empty
	// grid or an explicit layout with fewer cells than items.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrImageLoad reports a source that could not be opened or decoded.
	ErrImageLoad = errors.New("image load failed")

	// ErrUnsupportedType reports a dynamic value that is neither a path
	// nor an image.
	ErrUnsupportedType = errors.New("unsupported source type")
)
