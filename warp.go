package cfprep

import (
	"image"
	"math"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Warper resamples a frame under a geometric transform anchored at the frame
// centre. Implementations return a new frame with the source dimensions and
// fill pixels that have no source with 0.
type Warper interface {
	Rotate(src *image.Gray, theta float64) *image.Gray
	Scale(src *image.Gray, factor float64) *image.Gray
}

// NearestWarper is a pure Go Warper using nearest-neighbour sampling.
type NearestWarper struct{}

// Rotate turns src by theta radians about its centre. With the y axis
// pointing down a positive angle rotates clockwise on screen.
func (NearestWarper) Rotate(src *image.Gray, theta float64) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	var (
		sin, cos = math.Sincos(theta)
		cx       = float64(b.Min.X) + float64(b.Dx())/2
		cy       = float64(b.Min.Y) + float64(b.Dy())/2
		// destination centre
		dx = float64(b.Dx()) / 2
		dy = float64(b.Dy()) / 2
	)
	s2d := f64.Aff3{
		cos, -sin, dx - cos*cx + sin*cy,
		sin, cos, dy - sin*cx - cos*cy,
	}
	draw.NearestNeighbor.Transform(dst, s2d, src, b, draw.Src, nil)
	return dst
}

// Scale resizes src by factor and crops or pads the result around the
// centre back to the source dimensions.
func (NearestWarper) Scale(src *image.Gray, factor float64) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	sw := max(1, int(math.Round(float64(w)*factor)))
	sh := max(1, int(math.Round(float64(h)*factor)))
	scaled := resize.Resize(uint(sw), uint(sh), src, resize.NearestNeighbor)

	ox, oy := (w-sw)/2, (h-sh)/2
	r := image.Rect(ox, oy, ox+sw, oy+sh)
	draw.Draw(dst, r, scaled, scaled.Bounds().Min, draw.Src)
	return dst
}
