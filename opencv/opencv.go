// Package opencv provides OpenCV backed implementations of the cfprep
// Warper and FrameSink interfaces.
package opencv

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
)

// Warper resamples frames with cv::warpAffine using nearest-neighbour
// interpolation and a constant black border.
type Warper struct{}

// Rotate turns src by theta radians about its centre, clockwise on screen
// for positive angles.
func (w Warper) Rotate(src *image.Gray, theta float64) *image.Gray {
	return w.warp(src, -theta*180/math.Pi, 1)
}

// Scale resizes src by factor around its centre, keeping its dimensions.
func (w Warper) Scale(src *image.Gray, factor float64) *image.Gray {
	return w.warp(src, 0, factor)
}

func (Warper) warp(src *image.Gray, angle, scale float64) *image.Gray {
	b := src.Bounds()
	in := ToMat(src)
	defer in.Close()

	m := gocv.GetRotationMatrix2D(image.Pt(b.Dx()/2, b.Dy()/2), angle, scale)
	defer m.Close()

	out := gocv.NewMat()
	defer out.Close()
	gocv.WarpAffineWithParams(in, &out, m, image.Pt(b.Dx(), b.Dy()),
		gocv.InterpolationNearestNeighbor, gocv.BorderConstant, color.RGBA{})

	return FromMat(out)
}

// ToMat copies a grayscale frame into a new single channel 8-bit Mat.
// The caller owns the Mat and must Close it.
func ToMat(frame *image.Gray) gocv.Mat {
	b := frame.Bounds()
	m := gocv.NewMatWithSize(b.Dy(), b.Dx(), gocv.MatTypeCV8UC1)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			m.SetUCharAt(y, x, frame.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
		}
	}
	return m
}

// FromMat copies a single channel 8-bit Mat into a new grayscale frame.
func FromMat(m gocv.Mat) *image.Gray {
	rows, cols := m.Rows(), m.Cols()
	dst := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dst.Pix[dst.PixOffset(x, y)] = m.GetUCharAt(y, x)
		}
	}
	return dst
}

// Read decodes the image file at path as a grayscale frame.
func Read(path string) (*image.Gray, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	m := gocv.IMRead(path, gocv.IMReadGrayScale)
	defer m.Close()
	if m.Empty() {
		return nil, fmt.Errorf("unable to decode image %s", path)
	}
	return FromMat(m), nil
}

// Sink writes every frame it receives into Dir using the frame's name.
type Sink struct {
	Dir string
}

// Put encodes frame to Dir/name, with the format picked from the extension.
func (s Sink) Put(name string, frame *image.Gray) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	m := ToMat(frame)
	defer m.Close()

	path := filepath.Join(s.Dir, name)
	if !gocv.IMWrite(path, m) {
		return fmt.Errorf("unable to write %s", path)
	}
	return nil
}
