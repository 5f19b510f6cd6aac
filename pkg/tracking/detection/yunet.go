package detection

import (
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/teslashibe/go-nosemouse/pkg/debug"
	"gocv.io/x/gocv"
)

// YuNetDetector finds face boxes with OpenCV's FaceDetectorYN
type YuNetDetector struct {
	detector gocv.FaceDetectorYN
	config   Config
	mu       sync.Mutex // Protects inference
}

// NewYuNet loads the YuNet model at cfg.ModelPath
func NewYuNet(cfg Config) (*YuNetDetector, error) {
	if _, err := os.Stat(cfg.ModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, cfg.ModelPath)
	}

	// Initial size is replaced per frame
	detector := gocv.NewFaceDetectorYNWithParams(
		cfg.ModelPath,
		"",
		image.Pt(cfg.InputWidth, cfg.InputHeight),
		float32(cfg.ConfidenceThresh),
		0.3,  // NMS threshold
		5000, // Top K
		int(gocv.NetBackendDefault),
		int(gocv.NetTargetCPU),
	)

	return &YuNetDetector{
		detector: detector,
		config:   cfg,
	}, nil
}

// Detect returns every face above the confidence threshold
func (d *YuNetDetector) Detect(frame gocv.Mat) ([]Detection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if frame.Empty() {
		return nil, ErrEmptyFrame
	}

	d.detector.SetInputSize(image.Pt(frame.Cols(), frame.Rows()))

	faces := gocv.NewMat()
	defer faces.Close()

	d.detector.Detect(frame, &faces)

	detections := make([]Detection, 0, faces.Rows())
	for r := 0; r < faces.Rows(); r++ {
		detections = append(detections, yunetRow(faces, r))
	}

	if len(detections) > 0 {
		debug.TrackLog("👁️  YuNet found %d face(s)\n", len(detections))
	}

	return detections, nil
}

// yunetRow decodes one row of FaceDetectorYN output: x, y, w, h, then five
// keypoints (right eye, left eye, nose, right mouth, left mouth), then the score.
func yunetRow(faces gocv.Mat, r int) Detection {
	at := func(c int) int { return int(faces.GetFloatAt(r, c)) }
	x, y := at(0), at(1)
	return Detection{
		Box:        image.Rect(x, y, x+at(2), y+at(3)),
		Nose:       image.Pt(at(8), at(9)),
		Confidence: float64(faces.GetFloatAt(r, 14)),
	}
}

// Close releases the detector resources
func (d *YuNetDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.Close()
	return nil
}

var _ Detector = (*YuNetDetector)(nil)
