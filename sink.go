package cfprep

import "image"

// FrameSink receives generated frames, typically to persist them as debug
// artifacts. name is a file name derived from the frame's parameters.
type FrameSink interface {
	Put(name string, frame *image.Gray) error
}

// FrameSinkFunc adapts an ordinary function to the FrameSink interface.
type FrameSinkFunc func(name string, frame *image.Gray) error

// Put calls f(name, frame).
func (f FrameSinkFunc) Put(name string, frame *image.Gray) error {
	return f(name, frame)
}
