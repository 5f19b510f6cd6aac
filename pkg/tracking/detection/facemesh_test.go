package detection

import (
	"errors"
	"image"
	"testing"

	"github.com/teslashibe/go-nosemouse/pkg/landmark"
	"gocv.io/x/gocv"
)

// stubDetector returns canned detections
type stubDetector struct {
	dets   []Detection
	err    error
	closed bool
}

func (s *stubDetector) Detect(gocv.Mat) ([]Detection, error) { return s.dets, s.err }
func (s *stubDetector) Close() error                         { s.closed = true; return nil }

func TestFaceROI(t *testing.T) {
	bounds := image.Rect(0, 0, 1280, 720)

	tests := []struct {
		name  string
		box   image.Rectangle
		scale float64
		want  image.Rectangle
	}{
		{
			name:  "square box scaled",
			box:   image.Rect(600, 300, 700, 400),
			scale: 1.5,
			want:  image.Rect(575, 275, 725, 425),
		},
		{
			name:  "tall box uses height",
			box:   image.Rect(600, 300, 680, 400),
			scale: 1.0,
			want:  image.Rect(590, 300, 690, 400),
		},
		{
			name:  "clipped at frame edge",
			box:   image.Rect(0, 0, 100, 100),
			scale: 2.0,
			want:  image.Rect(0, 0, 150, 150),
		},
		{
			name:  "empty box",
			box:   image.Rectangle{},
			scale: 1.5,
			want:  image.Rectangle{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := faceROI(tc.box, bounds, tc.scale); got != tc.want {
				t.Errorf("faceROI: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseMesh(t *testing.T) {
	roi := image.Rect(100, 200, 484, 584) // 384px square, 2x the 192 input
	data := make([]float32, landmark.MeshPoints*3)
	data[landmark.NoseTip*3] = 96
	data[landmark.NoseTip*3+1] = 48
	data[landmark.NoseTip*3+2] = -3 // depth ignored

	set := parseMesh(data, roi, 192)
	if len(set) != landmark.MeshPoints {
		t.Fatalf("expected %d points, got %d", landmark.MeshPoints, len(set))
	}

	nose, err := set.At(landmark.NoseTip)
	if err != nil {
		t.Fatalf("At(NoseTip): %v", err)
	}
	if nose != (landmark.Point{X: 100 + 192, Y: 200 + 96}) {
		t.Errorf("nose: got %+v", nose)
	}
	if set[0] != (landmark.Point{X: 100, Y: 200}) {
		t.Errorf("point 0 should map to ROI corner, got %+v", set[0])
	}
}

func TestParseMesh_RefinedAndDegenerate(t *testing.T) {
	roi := image.Rect(0, 0, 192, 192)

	if got := parseMesh(make([]float32, landmark.RefinedMeshPoints*3), roi, 192); len(got) != landmark.RefinedMeshPoints {
		t.Errorf("refined mesh: got %d points", len(got))
	}
	if got := parseMesh(nil, roi, 192); got != nil {
		t.Errorf("no data: expected nil, got %d points", len(got))
	}
	if got := parseMesh(make([]float32, 9), image.Rectangle{}, 192); got != nil {
		t.Error("empty ROI: expected nil")
	}
}

func TestFaceMesh_NoFace(t *testing.T) {
	stub := &stubDetector{}
	m := newFaceMesh(DefaultConfig(), stub, gocv.Net{})

	frame := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer frame.Close()

	r, err := m.Detect(frame)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if r != nil {
		t.Errorf("expected nil result, got %+v", r)
	}
	if !m.Positions(r).Empty() {
		t.Error("Positions(nil) should be empty")
	}

	// Guides on a nil result are a no-op
	m.RenderGuides(&frame, nil, GuideOptions{Points: true, Features: true, Box: true})
}

func TestFaceMesh_DetectorError(t *testing.T) {
	stub := &stubDetector{err: ErrEmptyFrame}
	m := newFaceMesh(DefaultConfig(), stub, gocv.Net{})

	frame := gocv.NewMat()
	defer frame.Close()

	if _, err := m.Detect(frame); !errors.Is(err, ErrEmptyFrame) {
		t.Errorf("expected ErrEmptyFrame, got %v", err)
	}
}

func TestFaceMesh_RenderGuides(t *testing.T) {
	m := newFaceMesh(DefaultConfig(), &stubDetector{}, gocv.Net{})

	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 720, 1280, gocv.MatTypeCV8UC3)
	defer frame.Close()

	set := make(landmark.Set, landmark.MeshPoints)
	for i := range set {
		set[i] = landmark.Point{X: 600 + i%50, Y: 300 + i/50}
	}
	r := &Result{
		Box:       image.Rect(580, 280, 700, 400),
		ROI:       image.Rect(550, 250, 730, 430),
		Landmarks: set,
	}

	m.RenderGuides(&frame, r, GuideOptions{Points: true, Features: true, Box: true})

	if v := frame.GetVecbAt(300, 600); v[0] == 0 && v[1] == 0 && v[2] == 0 {
		t.Error("expected a guide pixel at the first landmark")
	}
}

func TestNewFaceMesh_MissingModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LandmarkModelPath = "/nonexistent/face_landmark.onnx"

	if _, err := NewFaceMesh(cfg); !errors.Is(err, ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got %v", err)
	}
}

func TestFaceMesh_FaceOutsideFrame(t *testing.T) {
	stub := &stubDetector{dets: []Detection{
		{Box: image.Rect(1400, 800, 1500, 900), Confidence: 0.9},
	}}
	m := newFaceMesh(DefaultConfig(), stub, gocv.Net{})

	frame := gocv.NewMatWithSize(720, 1280, gocv.MatTypeCV8UC3)
	defer frame.Close()

	r, err := m.Detect(frame)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if r != nil {
		t.Errorf("box outside the frame should give no result, got %+v", r)
	}
}
