package cfprep

import (
	"fmt"
	"image"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Options configures a Preprocessor.
type Options struct {
	// Workers is the number of goroutines sharing the per-pixel steps.
	// Values below 2 keep the whole pipeline on the calling goroutine.
	Workers int
}

// Preprocessor turns grayscale frames into whitened, windowed feature
// vectors ready for frequency-domain correlation.
type Preprocessor struct {
	Options
}

// NewPreprocessor creates a Preprocessor with the given options.
func NewPreprocessor(opts Options) *Preprocessor {
	return &Preprocessor{Options: opts}
}

// Preprocess runs frame through a sequential Preprocessor.
func Preprocess(frame *image.Gray) (FeatureVector, error) {
	return NewPreprocessor(Options{}).Preprocess(frame)
}

// Preprocess log-compresses every intensity as ln(p+1), removes the mean,
// scales the result to unit L2 norm and multiplies it by CosineWindow.
//
// A frame of identical pixels has nothing left after mean removal and maps
// to the zero vector. Preprocess is not idempotent: feeding its output back
// in, through ToFrame, yields a different vector.
func (p *Preprocessor) Preprocess(frame *image.Gray) (FeatureVector, error) {
	width, height := frameSize(frame)
	win, err := CosineWindow(width, height)
	if err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	v := make(FeatureVector, width*height)
	p.columns(width, func(x0, x1 int) {
		for x := x0; x < x1; x++ {
			for y := 0; y < height; y++ {
				v[x*height+y] = math.Log1p(float64(grayAt(frame, x, y)))
			}
		}
	})

	// Rounding in the mean would otherwise leave noise that the norm
	// division blows up to full scale.
	if floats.Max(v) == floats.Min(v) {
		return make(FeatureVector, len(v)), nil
	}

	floats.AddConst(-floats.Sum(v)/float64(len(v)), v)
	if norm := floats.Norm(v, 2); norm != 0 {
		floats.Scale(1/norm, v)
	}

	p.columns(width, func(x0, x1 int) {
		lo, hi := x0*height, x1*height
		floats.Mul(v[lo:hi], win[lo:hi])
	})
	return v, nil
}

// columns calls fn over contiguous column ranges covering [0, width),
// concurrently when more than one worker is configured.
func (p *Preprocessor) columns(width int, fn func(x0, x1 int)) {
	if p.Workers < 2 || width < 2 {
		fn(0, width)
		return
	}

	var wg sync.WaitGroup
	for _, s := range stripes(width, p.Workers) {
		wg.Add(1)
		go func(x0, x1 int) {
			defer wg.Done()
			fn(x0, x1)
		}(s[0], s[1])
	}
	wg.Wait()
}
