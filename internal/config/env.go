// Package config provides configuration helpers for go-nosemouse commands.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Default locations and file names.
const (
	DefaultModelDir      = "models"
	DefaultFaceModel     = "face_detection_yunet.onnx"
	DefaultLandmarkModel = "face_landmark.onnx"
	DefaultCameraDevice  = 0
)

// ModelDir returns the model directory from NOSEMOUSE_MODELS env var.
// Falls back to the provided default if not set.
func ModelDir(defaultDir string) string {
	if dir := os.Getenv("NOSEMOUSE_MODELS"); dir != "" {
		return dir
	}
	return defaultDir
}

// ModelPath joins a model file name onto the model directory.
func ModelPath(dir, name string) string {
	return filepath.Join(dir, name)
}

// CameraDevice returns the capture device index from NOSEMOUSE_CAMERA env var.
// Falls back to the provided default if unset or not a number.
func CameraDevice(defaultDevice int) int {
	if v := os.Getenv("NOSEMOUSE_CAMERA"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return defaultDevice
}
