package detection

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/teslashibe/go-nosemouse/internal/log"
	"github.com/teslashibe/go-nosemouse/pkg/debug"
	"github.com/teslashibe/go-nosemouse/pkg/landmark"
	"gocv.io/x/gocv"
)

var (
	guidePointColor   = color.RGBA{R: 255, G: 0, B: 0, A: 0}
	guideFeatureColor = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	guideSpokeColor   = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	guideBoxColor     = color.RGBA{R: 255, G: 255, B: 0, A: 0}
)

// FaceMesh finds the face with YuNet, then runs a face-landmark ONNX model
// on a square crop around it. The model takes a 1x3xNxN RGB blob in [0, 1]
// and emits N*3 floats (x, y, z in crop pixels) as its first output.
type FaceMesh struct {
	faces  Detector
	net    gocv.Net
	config Config
	mu     sync.Mutex // Protects inference
}

// NewFaceMesh loads both models.
func NewFaceMesh(cfg Config) (*FaceMesh, error) {
	if _, err := os.Stat(cfg.LandmarkModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, cfg.LandmarkModelPath)
	}

	faces, err := NewYuNet(cfg)
	if err != nil {
		return nil, err
	}

	net := gocv.ReadNetFromONNX(cfg.LandmarkModelPath)
	if net.Empty() {
		faces.Close()
		return nil, fmt.Errorf("%w: %s", ErrModelLoad, cfg.LandmarkModelPath)
	}

	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return newFaceMesh(cfg, faces, net), nil
}

func newFaceMesh(cfg Config, faces Detector, net gocv.Net) *FaceMesh {
	if cfg.LandmarkInputSize <= 0 {
		cfg.LandmarkInputSize = DefaultConfig().LandmarkInputSize
	}
	if cfg.ROIScale <= 0 {
		cfg.ROIScale = DefaultConfig().ROIScale
	}
	return &FaceMesh{faces: faces, net: net, config: cfg}
}

// Detect finds the best face and its landmarks.
func (m *FaceMesh) Detect(frame gocv.Mat) (*Result, error) {
	dets, err := m.faces.Detect(frame)
	if err != nil {
		return nil, err
	}

	best := SelectBest(dets)
	if best == nil {
		return nil, nil
	}

	bounds := image.Rect(0, 0, frame.Cols(), frame.Rows())
	box := best.Box.Intersect(bounds)
	roi := faceROI(box, bounds, m.config.ROIScale)
	if roi.Empty() {
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	crop := frame.Region(roi)
	defer crop.Close()

	size := m.config.LandmarkInputSize
	blob := gocv.BlobFromImage(crop, 1.0/255.0, image.Pt(size, size), gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	m.net.SetInput(blob, "")
	output := m.net.Forward("")
	defer output.Close()

	data, err := output.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("read landmark output: %w", err)
	}

	set := parseMesh(data, roi, size)
	debug.TrackLog("🧑 Face mesh: %d landmarks (conf %.2f)\n", len(set), best.Confidence)

	return &Result{
		Face:      *best,
		Box:       box,
		ROI:       roi,
		Landmarks: set,
	}, nil
}

// Positions returns the landmark set, empty when no face was found.
func (m *FaceMesh) Positions(r *Result) landmark.Set {
	if r == nil {
		return nil
	}
	return r.Landmarks
}

// RenderGuides draws the selected guides on frame.
func (m *FaceMesh) RenderGuides(frame *gocv.Mat, r *Result, opts GuideOptions) {
	if r == nil || len(r.Landmarks) == 0 {
		return
	}
	set := r.Landmarks

	if opts.Box {
		gocv.Rectangle(frame, r.Box, guideBoxColor, 1)
		gocv.Rectangle(frame, r.ROI, guideBoxColor, 1)
		gocv.Circle(frame, r.Face.Nose, 3, guideBoxColor, 1)
	}

	if opts.Points {
		for _, p := range set {
			gocv.Circle(frame, image.Pt(p.X, p.Y), 1, guidePointColor, -1)
		}
	}

	if opts.Features {
		for _, outline := range [][]int{landmark.RightEyeOutline, landmark.LeftEyeOutline} {
			for _, id := range outline {
				if p, err := set.At(id); err == nil {
					gocv.Circle(frame, image.Pt(p.X, p.Y), 1, guideFeatureColor, -1)
				}
			}
		}

		nose, err := set.At(landmark.NoseTip)
		if err != nil {
			log.Debug("nose tip missing from mesh", "points", len(set))
			return
		}
		for _, id := range landmark.OriginSpokes {
			if p, err := set.At(id); err == nil {
				gocv.Line(frame, image.Pt(nose.X, nose.Y), image.Pt(p.X, p.Y), guideSpokeColor, 1)
			}
		}
	}
}

// Close releases both models
func (m *FaceMesh) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.net.Close()
	return m.faces.Close()
}

// faceROI returns a square crop of side max(w, h)*scale centred on box, clipped to bounds.
func faceROI(box, bounds image.Rectangle, scale float64) image.Rectangle {
	if box.Empty() {
		return image.Rectangle{}
	}

	side := box.Dx()
	if box.Dy() > side {
		side = box.Dy()
	}
	side = int(float64(side) * scale)

	cx := (box.Min.X + box.Max.X) / 2
	cy := (box.Min.Y + box.Max.Y) / 2
	half := side / 2

	roi := image.Rect(cx-half, cy-half, cx-half+side, cy-half+side)
	return roi.Intersect(bounds)
}

// parseMesh maps model output (x, y, z triplets in input-pixel space) back into frame pixels.
func parseMesh(data []float32, roi image.Rectangle, inputSize int) landmark.Set {
	n := len(data) / 3
	if n == 0 || inputSize <= 0 || roi.Empty() {
		return nil
	}

	sx := float64(roi.Dx()) / float64(inputSize)
	sy := float64(roi.Dy()) / float64(inputSize)

	set := make(landmark.Set, n)
	for i := 0; i < n; i++ {
		set[i] = landmark.Point{
			X: roi.Min.X + int(float64(data[3*i])*sx),
			Y: roi.Min.Y + int(float64(data[3*i+1])*sy),
		}
	}
	return set
}

var _ Provider = (*FaceMesh)(nil)
