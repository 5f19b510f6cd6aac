// Package detection finds the user's face and its landmark mesh in camera frames.
package detection

import (
	"image"

	"gocv.io/x/gocv"
)

// Detection is one face found by the box detector, in frame pixels.
type Detection struct {
	Box        image.Rectangle
	Nose       image.Point // Detector's own nose keypoint, used for guides only
	Confidence float64
}

// Center returns the middle of the face box.
func (d Detection) Center() image.Point {
	return image.Pt((d.Box.Min.X+d.Box.Max.X)/2, (d.Box.Min.Y+d.Box.Max.Y)/2)
}

// Area returns the box area in square pixels.
func (d Detection) Area() int {
	return d.Box.Dx() * d.Box.Dy()
}

// Detector finds face boxes in a frame.
type Detector interface {
	Detect(frame gocv.Mat) ([]Detection, error)
	Close() error
}

// Config holds detector configuration
type Config struct {
	ModelPath        string  // YuNet ONNX model
	ConfidenceThresh float64 // Minimum face score
	InputWidth       int     // Initial YuNet input size; replaced per frame
	InputHeight      int

	LandmarkModelPath string  // Face-mesh ONNX model
	LandmarkInputSize int     // Square face-mesh input
	ROIScale          float64 // Face box expansion before cropping for the mesh
}

// DefaultConfig returns defaults for YuNet + a 192px face mesh.
func DefaultConfig() Config {
	return Config{
		ModelPath:        "models/face_detection_yunet.onnx",
		ConfidenceThresh: 0.5,
		InputWidth:       320,
		InputHeight:      320,

		LandmarkModelPath: "models/face_landmark.onnx",
		LandmarkInputSize: 192,
		ROIScale:          1.5,
	}
}

// SelectBest picks the face to track: the largest box, which is the person
// nearest the camera. Equal areas fall back to confidence.
func SelectBest(dets []Detection) *Detection {
	var best *Detection
	for i := range dets {
		d := &dets[i]
		if d.Box.Empty() {
			continue
		}
		if best == nil || d.Area() > best.Area() ||
			(d.Area() == best.Area() && d.Confidence > best.Confidence) {
			best = d
		}
	}
	return best
}
