package display

import (
	"testing"
	"time"

	"github.com/teslashibe/go-nosemouse/pkg/landmark"
	"github.com/teslashibe/go-nosemouse/pkg/tracking"
	"gocv.io/x/gocv"
)

func TestIsQuitKey(t *testing.T) {
	tests := []struct {
		key  int
		want bool
	}{
		{-1, false},
		{'q', true},
		{'Q', true},
		{'q' | 0x100000, true}, // modifier bits set by some backends
		{'x', false},
		{27, false},
	}

	for _, tc := range tests {
		if got := IsQuitKey(tc.key); got != tc.want {
			t.Errorf("IsQuitKey(%d) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestRings(t *testing.T) {
	rings := Rings(tracking.DefaultZones())
	want := []Ring{{60, White}, {45, Red}, {30, Green}, {15, Blue}}
	if len(rings) != len(want) {
		t.Fatalf("expected %d rings, got %d", len(want), len(rings))
	}
	for i := range want {
		if rings[i] != want[i] {
			t.Errorf("ring %d: got %+v, want %+v", i, rings[i], want[i])
		}
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		name    string
		d       tracking.Decision
		warning string
		dx, dy  string
	}{
		{"dead zone", tracking.Decision{Zone: tracking.ZoneDead, DX: 3}, "", "", ""},
		{"slow", tracking.Decision{Zone: tracking.ZoneSlow, DX: 20, DY: -4}, "", "20", "-4"},
		{"fast", tracking.Decision{Zone: tracking.ZoneFast, DX: -50, DY: 0}, "", "-50", "0"},
		{"out of bounds", tracking.Decision{Zone: tracking.ZoneOutOfBounds, DX: 90}, "Out of the perimeter.", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, dx, dy := Labels(tc.d)
			if w != tc.warning || dx != tc.dx || dy != tc.dy {
				t.Errorf("Labels: got (%q, %q, %q), want (%q, %q, %q)", w, dx, dy, tc.warning, tc.dx, tc.dy)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 720, 1280, gocv.MatTypeCV8UC3)
	defer frame.Close()

	d := tracking.Decision{
		HasOrigin: true,
		Origin:    landmark.Point{X: 640, Y: 360},
		Nose:      landmark.Point{X: 700, Y: 360},
		DX:        60,
		Zone:      tracking.ZoneFast,
	}
	Draw(&frame, d, tracking.DefaultZones())
	DrawFPS(&frame, 30)

	// Perimeter ring passes through (640, 300): top of the 60px circle, drawn white
	v := frame.GetVecbAt(300, 640)
	if v[0] != 255 || v[1] != 255 || v[2] != 255 {
		t.Errorf("expected white perimeter pixel, got %v", v)
	}
}

func TestDraw_SkippedFrameDrawsNothing(t *testing.T) {
	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 720, 1280, gocv.MatTypeCV8UC3)
	defer frame.Close()

	Draw(&frame, tracking.Decision{Skipped: true, HasOrigin: true}, tracking.DefaultZones())

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
	if n := gocv.CountNonZero(gray); n != 0 {
		t.Errorf("expected untouched frame, %d pixels changed", n)
	}
}

func TestFPSMeter(t *testing.T) {
	m := NewFPSMeter(1)
	start := time.Unix(0, 0)

	if fps := m.Tick(start); fps != 0 {
		t.Errorf("first tick should report 0, got %v", fps)
	}
	if fps := m.Tick(start.Add(40 * time.Millisecond)); fps < 24.9 || fps > 25.1 {
		t.Errorf("expected ~25 FPS, got %v", fps)
	}
}
