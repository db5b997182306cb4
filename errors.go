package cfprep

import "errors"

var (
	// ErrInvalidArgument is returned for dimensions, indices or windows
	// that cannot describe a valid frame region.
	ErrInvalidArgument = errors.New("cfprep: invalid argument")
	// ErrLengthMismatch is returned when a buffer does not hold width*height values.
	ErrLengthMismatch = errors.New("cfprep: buffer length mismatch")
)
