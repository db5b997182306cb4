package cfprep

import (
	"fmt"
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
)

// FeatureVector holds one float per pixel of a frame, walked column by
// column: position x*H+y holds the value computed from pixel (x, y).
type FeatureVector []float64

// ToFrame narrows a feature vector back into an 8-bit frame for debugging.
// Values are truncated toward zero and saturated to [0, 255]; NaN becomes 0.
// The conversion is lossy and is not an inverse of Preprocess.
func ToFrame(values FeatureVector, width, height int) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("to frame: %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("to frame: got %d values for %dx%d: %w", len(values), width, height, ErrLengthMismatch)
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))
	pos := 0
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			dst.Pix[dst.PixOffset(x, y)] = narrow(values[pos])
			pos++
		}
	}
	return dst, nil
}

// narrow truncates v to an 8-bit intensity.
func narrow(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Trunc(v))
}

// Rescale stretches the values of v linearly onto [0, 255], so a whitened
// vector becomes visible once passed through ToFrame. A constant vector maps
// to all zeros.
func Rescale(v FeatureVector) FeatureVector {
	out := make(FeatureVector, len(v))
	if len(v) == 0 {
		return out
	}
	lo, hi := floats.Min(v), floats.Max(v)
	if hi == lo {
		return out
	}
	copy(out, v)
	floats.AddConst(-lo, out)
	floats.Scale(255/(hi-lo), out)
	return out
}
