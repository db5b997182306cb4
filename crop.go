package cfprep

import (
	"fmt"
	"image"
)

// Crop copies a width x height window of frame centred on center. The window
// is shifted, never shrunk, to stay inside the frame, so centers near or past
// an edge still produce a full-size crop. A window larger than the frame is
// rejected with ErrInvalidArgument.
func Crop(frame *image.Gray, width, height int, center image.Point) (*image.Gray, error) {
	fw, fh := frameSize(frame)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("crop: window %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if width > fw || height > fh {
		return nil, fmt.Errorf("crop: window %dx%d exceeds frame %dx%d: %w", width, height, fw, fh, ErrInvalidArgument)
	}

	x0 := min(saturatingSub(center.X, width/2), fw-width)
	y0 := min(saturatingSub(center.Y, height/2), fh-height)

	dst := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := frame.PixOffset(frame.Rect.Min.X+x0, frame.Rect.Min.Y+y0+y)
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+width], frame.Pix[src:src+width])
	}
	return dst, nil
}
