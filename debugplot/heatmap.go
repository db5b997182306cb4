// Package debugplot renders feature vectors as heatmap images for inspection.
package debugplot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/esimov/cfprep"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// grid exposes a column-major feature vector as a plotter.GridXYZ, with row 0
// at the top of the frame as in the source image.
type grid struct {
	values        cfprep.FeatureVector
	width, height int
}

func (g grid) Dims() (c, r int)   { return g.width, g.height }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }
func (g grid) Z(c, r int) float64 { return g.values[c*g.height+(g.height-1-r)] }

// Heatmap writes a width x height feature vector to path as an image. The
// format follows the extension of path (png, svg, pdf, ...).
func Heatmap(values cfprep.FeatureVector, width, height int, title, path string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("heatmap %dx%d: %w", width, height, cfprep.ErrInvalidArgument)
	}
	if len(values) != width*height {
		return fmt.Errorf("heatmap: got %d values for %dx%d: %w", len(values), width, height, cfprep.ErrLengthMismatch)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	hm := plotter.NewHeatMap(grid{values: values, width: width, height: height}, palette.Heat(64, 1))
	if hm.Min == hm.Max {
		// A flat vector has no range to map onto the palette.
		hm.Max = hm.Min + 1
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(hm)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save heatmap: %w", err)
	}
	return nil
}

// Window writes the cosine window used for width x height frames to path.
func Window(width, height int, path string) error {
	win, err := cfprep.CosineWindow(width, height)
	if err != nil {
		return err
	}
	return Heatmap(win, width, height, fmt.Sprintf("cosine window %dx%d", width, height), path)
}
