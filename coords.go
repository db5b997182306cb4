package cfprep

import (
	"fmt"
	"image"
)

// IndexToCoords converts a linear index of a row-major buffer with the given
// width into its (x, y) coordinate.
func IndexToCoords(width, index int) (image.Point, error) {
	if width <= 0 {
		return image.Point{}, fmt.Errorf("index to coords: width %d: %w", width, ErrInvalidArgument)
	}
	if index < 0 {
		return image.Point{}, fmt.Errorf("index to coords: index %d: %w", index, ErrInvalidArgument)
	}
	x := index % width
	return image.Point{X: x, Y: (index - x) / width}, nil
}

// VectorCoords maps a FeatureVector position back to the pixel it was
// computed from. Feature vectors walk the frame column by column, so the
// column height is needed rather than the width.
func VectorCoords(height, position int) (image.Point, error) {
	if height <= 0 {
		return image.Point{}, fmt.Errorf("vector coords: height %d: %w", height, ErrInvalidArgument)
	}
	if position < 0 {
		return image.Point{}, fmt.Errorf("vector coords: position %d: %w", position, ErrInvalidArgument)
	}
	return image.Point{X: position / height, Y: position % height}, nil
}
