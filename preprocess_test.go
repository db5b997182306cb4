package cfprep

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referencePreprocess is a direct, loop based rendition of the pipeline.
func referencePreprocess(frame *image.Gray) []float64 {
	w, h := frame.Bounds().Dx(), frame.Bounds().Dy()
	v := make([]float64, 0, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			v = append(v, math.Log(float64(frame.GrayAt(x, y).Y)+1))
		}
	}
	var sum float64
	for _, e := range v {
		sum += e
	}
	mean := sum / float64(len(v))
	var sq float64
	for i := range v {
		v[i] -= mean
		sq += v[i] * v[i]
	}
	if norm := math.Sqrt(sq); norm != 0 {
		for i := range v {
			v[i] /= norm
		}
	}
	pos := 0
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			cww := math.Sin(math.Pi * float64(i) / float64(w-1))
			cwh := math.Sin(math.Pi * float64(j) / float64(h-1))
			v[pos] *= math.Min(cww, cwh)
			pos++
		}
	}
	return v
}

// noiseFrame returns a frame filled with a deterministic pseudo-random pattern.
func noiseFrame(w, h int) *image.Gray {
	f := image.NewGray(image.Rect(0, 0, w, h))
	seed := uint32(2463534242)
	for i := range f.Pix {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		f.Pix[i] = uint8(seed)
	}
	return f
}

func TestPreprocessSize(t *testing.T) {
	for _, size := range []image.Point{{2, 2}, {4, 8}, {8, 4}, {31, 17}} {
		got, err := Preprocess(noiseFrame(size.X, size.Y))
		require.NoError(t, err)
		assert.Len(t, got, size.X*size.Y)
	}
}

func TestPreprocessZeroFrame(t *testing.T) {
	got, err := Preprocess(image.NewGray(image.Rect(0, 0, 4, 8)))
	require.NoError(t, err)
	assert.Equal(t, make(FeatureVector, 32), got)
}

func TestPreprocessUniformFrame(t *testing.T) {
	for _, level := range []uint8{1, 37, 200, 255} {
		frame := image.NewGray(image.Rect(0, 0, 7, 5))
		for i := range frame.Pix {
			frame.Pix[i] = level
		}
		got, err := Preprocess(frame)
		require.NoError(t, err)
		assert.Equal(t, make(FeatureVector, 35), got, "level %d", level)
	}
}

func TestPreprocessMatchesReference(t *testing.T) {
	for _, size := range []image.Point{{2, 2}, {4, 8}, {16, 9}, {33, 21}} {
		frame := noiseFrame(size.X, size.Y)
		got, err := Preprocess(frame)
		require.NoError(t, err)
		assert.InDeltaSlice(t, referencePreprocess(frame), []float64(got), 1e-12, "size %v", size)
	}
}

func TestPreprocessUnitNormBeforeWindow(t *testing.T) {
	frame := noiseFrame(12, 10)
	got, err := Preprocess(frame)
	require.NoError(t, err)
	win, err := CosineWindow(12, 10)
	require.NoError(t, err)

	// Undo the window where it is large enough to divide by safely, and
	// check the unwindowed values sit on the unit sphere alongside the rest.
	var sq float64
	for i, w := range win {
		if w > 1e-6 {
			u := got[i] / w
			sq += u * u
		}
	}
	assert.LessOrEqual(t, sq, 1+1e-9)

	var windowed float64
	for _, v := range got {
		windowed += v * v
	}
	assert.Less(t, windowed, 1.0)
	assert.Greater(t, windowed, 0.0)
}

func TestPreprocessSubImage(t *testing.T) {
	frame := noiseFrame(20, 20)
	rect := image.Rect(3, 4, 13, 12)
	sub := frame.SubImage(rect).(*image.Gray)

	copied, err := Crop(frame, 10, 8, image.Pt(8, 8))
	require.NoError(t, err)

	a, err := Preprocess(sub)
	require.NoError(t, err)
	b, err := Preprocess(copied)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestPreprocessWorkersMatchSequential(t *testing.T) {
	frame := noiseFrame(37, 23)
	want, err := Preprocess(frame)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 64} {
		got, err := NewPreprocessor(Options{Workers: workers}).Preprocess(frame)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers %d", workers)
	}
}

func TestPreprocessDegenerateDimensions(t *testing.T) {
	_, err := Preprocess(image.NewGray(image.Rect(0, 0, 0, 4)))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Preprocess(image.NewGray(image.Rect(0, 0, 4, 0)))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// A single column is windowed along y only.
	column := noiseFrame(1, 6)
	got, err := Preprocess(column)
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.InDelta(t, 0, got[0], 1e-15)
	assert.InDelta(t, 0, got[5], 1e-15)
	assert.NotZero(t, got[2])

	// A single pixel is constant and maps to zero.
	got, err = Preprocess(noiseFrame(1, 1))
	require.NoError(t, err)
	assert.Equal(t, FeatureVector{0}, got)
}

func TestPreprocessIsNotIdempotent(t *testing.T) {
	frame := noiseFrame(16, 16)
	first, err := Preprocess(frame)
	require.NoError(t, err)

	again, err := ToFrame(Rescale(first), 16, 16)
	require.NoError(t, err)
	second, err := Preprocess(again)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCosineWindow(t *testing.T) {
	win, err := CosineWindow(5, 9)
	require.NoError(t, err)
	require.Len(t, win, 45)

	for pos, v := range win {
		p, err := VectorCoords(9, pos)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		if p.X == 0 || p.X == 4 || p.Y == 0 || p.Y == 8 {
			assert.InDelta(t, 0, v, 1e-15, "border %v", p)
		}
	}
	// Single peak at the centre.
	assert.InDelta(t, 1, win[2*9+4], 1e-15)
	for pos, v := range win {
		if pos != 2*9+4 {
			assert.Less(t, v, 1.0)
		}
	}
}

func TestCosineWindowSingleAxis(t *testing.T) {
	win, err := CosineWindow(1, 1)
	require.NoError(t, err)
	assert.Equal(t, FeatureVector{1}, win)

	row, err := CosineWindow(3, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 0}, []float64(row), 1e-15)

	col, err := CosineWindow(1, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 0}, []float64(col), 1e-15)

	_, err = CosineWindow(0, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
