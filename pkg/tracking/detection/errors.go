package detection

import "errors"

// Sentinel errors for detector setup and inference.
var (
	// ErrModelNotFound is returned when a model file is missing on disk.
	ErrModelNotFound = errors.New("detection: model not found")

	// ErrModelLoad is returned when OpenCV cannot load a model.
	ErrModelLoad = errors.New("detection: failed to load model")

	// ErrEmptyFrame is returned when asked to detect on an empty Mat.
	ErrEmptyFrame = errors.New("detection: empty frame")
)
