package cfprep

import (
	"fmt"
	"image"
	"iter"
	"strconv"
)

var (
	rotationAngles = []float64{
		0.02, -0.02, 0.05, -0.05, 0.07, -0.07, 0.09, -0.09,
		1.1, -1.1, 1.3, -1.3, 1.5, -1.5, 2.0, -2.0,
	}
	scaleFactors = []float64{0.8, 0.9, 1.1, 1.2}
)

// DefaultRotationAngles returns a copy of the rotation angles, in radians,
// used when AugmentOptions.Angles is nil.
func DefaultRotationAngles() []float64 {
	return append([]float64(nil), rotationAngles...)
}

// DefaultScaleFactors returns a copy of the scale factors used when
// AugmentOptions.Scales is nil.
func DefaultScaleFactors() []float64 {
	return append([]float64(nil), scaleFactors...)
}

// VariantKind tells which transform produced a Variant.
type VariantKind int

const (
	Rotation VariantKind = iota
	Scaling
)

func (k VariantKind) String() string {
	switch k {
	case Rotation:
		return "rotation"
	case Scaling:
		return "scale"
	}
	return "VariantKind(" + strconv.Itoa(int(k)) + ")"
}

// Variant is one synthetic training frame.
type Variant struct {
	Kind VariantKind
	// Param is the rotation angle in radians or the scale factor.
	Param float64
	Frame *image.Gray
}

// Name returns the artifact file name for the variant.
func (v Variant) Name() string {
	p := strconv.FormatFloat(v.Param, 'f', -1, 64)
	if v.Kind == Scaling {
		return "training_frame_scaled_" + p + ".png"
	}
	return "training_frame_rotated_theta_" + p + ".png"
}

// AugmentOptions configures a Generator. Zero values select the defaults.
type AugmentOptions struct {
	Angles []float64
	Scales []float64
	Warper Warper
	// Sink, if set, receives every variant before it is yielded.
	Sink FrameSink
}

// Generator synthesizes rotated and scaled copies of a frame so a tracker
// can bootstrap its filter from a single sample.
type Generator struct {
	angles []float64
	scales []float64
	warper Warper
	sink   FrameSink
}

// NewGenerator creates a Generator. The angle and scale lists are copied, so
// later changes to opts do not affect it.
func NewGenerator(opts AugmentOptions) *Generator {
	g := &Generator{
		angles: DefaultRotationAngles(),
		scales: DefaultScaleFactors(),
		warper: opts.Warper,
		sink:   opts.Sink,
	}
	if opts.Angles != nil {
		g.angles = append([]float64(nil), opts.Angles...)
	}
	if opts.Scales != nil {
		g.scales = append([]float64(nil), opts.Scales...)
	}
	if g.warper == nil {
		g.warper = NearestWarper{}
	}
	return g
}

// Angles returns a copy of the configured rotation angles.
func (g *Generator) Angles() []float64 { return append([]float64(nil), g.angles...) }

// ScaleFactors returns a copy of the configured scale factors.
func (g *Generator) ScaleFactors() []float64 { return append([]float64(nil), g.scales...) }

// Rotations yields one rotated copy of frame per configured angle. Frames
// are produced lazily and the sequence can be ranged over again.
// A non-nil error reports a sink failure for the accompanying variant.
func (g *Generator) Rotations(frame *image.Gray) iter.Seq2[Variant, error] {
	return g.variants(Rotation, g.angles, frame, g.warper.Rotate)
}

// Scales yields one scaled copy of frame per configured factor.
func (g *Generator) Scales(frame *image.Gray) iter.Seq2[Variant, error] {
	return g.variants(Scaling, g.scales, frame, g.warper.Scale)
}

// All yields the rotations followed by the scales.
func (g *Generator) All(frame *image.Gray) iter.Seq2[Variant, error] {
	return func(yield func(Variant, error) bool) {
		for v, err := range g.Rotations(frame) {
			if !yield(v, err) {
				return
			}
		}
		for v, err := range g.Scales(frame) {
			if !yield(v, err) {
				return
			}
		}
	}
}

func (g *Generator) variants(
	kind VariantKind,
	params []float64,
	frame *image.Gray,
	warp func(*image.Gray, float64) *image.Gray,
) iter.Seq2[Variant, error] {
	return func(yield func(Variant, error) bool) {
		for _, p := range params {
			v := Variant{Kind: kind, Param: p, Frame: warp(frame, p)}

			var err error
			if g.sink != nil {
				if serr := g.sink.Put(v.Name(), v.Frame); serr != nil {
					err = fmt.Errorf("sink %s: %w", v.Name(), serr)
				}
			}
			if !yield(v, err) {
				return
			}
		}
	}
}
