package camera

import "errors"

// Sentinel errors for capture.
var (
	// ErrOpen is returned when the device cannot be opened.
	ErrOpen = errors.New("camera: cannot open device")

	// ErrReadFailed is returned when a frame cannot be read.
	ErrReadFailed = errors.New("camera: read failed")

	// ErrClosed is returned when reading after Close.
	ErrClosed = errors.New("camera: closed")

	// ErrInvalidConfig is returned when Validate reports problems.
	ErrInvalidConfig = errors.New("camera: invalid config")
)
