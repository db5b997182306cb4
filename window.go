package cfprep

import (
	"fmt"
	"math"
)

// CosineWindow returns the apodization window applied by Preprocess, in
// feature vector order. Each value is the smaller of two half-sine windows,
// one per axis, so the window is 0 on the border and peaks in the middle.
// An axis of length 1 has no border and contributes a constant 1.
func CosineWindow(width, height int) (FeatureVector, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("cosine window: %dx%d: %w", width, height, ErrInvalidArgument)
	}
	cwh := halfSine(height)
	win := make(FeatureVector, 0, width*height)
	for _, cww := range halfSine(width) {
		for j := range height {
			win = append(win, min(cww, cwh[j]))
		}
	}
	return win, nil
}

// halfSine evaluates sin(pi*k/(n-1)) for k in [0, n).
func halfSine(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for k := range w {
		w[k] = math.Sin(math.Pi * float64(k) / float64(n-1))
	}
	return w
}
