package cfprep

import "image"

// frameSize returns the width and height of a frame.
func frameSize(frame *image.Gray) (int, int) {
	b := frame.Bounds()
	return b.Dx(), b.Dy()
}

// grayAt returns the intensity at (x, y) relative to the frame origin.
func grayAt(frame *image.Gray, x, y int) uint8 {
	return frame.Pix[frame.PixOffset(frame.Rect.Min.X+x, frame.Rect.Min.Y+y)]
}

// saturatingSub returns a-b, or 0 if the subtraction would go negative.
func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

// stripes splits n columns into at most workers contiguous [start, end) ranges.
func stripes(n, workers int) [][2]int {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	var (
		out   = make([][2]int, 0, workers)
		size  = n / workers
		extra = n % workers
		start int
	)
	for i := 0; i < workers; i++ {
		end := start + size
		if i < extra {
			end++
		}
		out = append(out, [2]int{start, end})
		start = end
	}
	return out
}
