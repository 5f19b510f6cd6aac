package camera

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestPrepare_ResizesAndMirrors(t *testing.T) {
	// 640x480 source, left half white, right half black
	src := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 480, 640, gocv.MatTypeCV8UC3)
	defer src.Close()
	for row := 0; row < 480; row++ {
		for col := 0; col < 320; col++ {
			src.SetUCharAt(row, col*3, 255)
			src.SetUCharAt(row, col*3+1, 255)
			src.SetUCharAt(row, col*3+2, 255)
		}
	}

	cfg := DefaultConfig()
	frame := Prepare(src, cfg)
	defer frame.Close()

	if frame.Cols() != 1280 || frame.Rows() != 720 {
		t.Fatalf("expected 1280x720, got %dx%d", frame.Cols(), frame.Rows())
	}

	// Mirrored: white is now on the right
	if frame.GetUCharAt(360, 10*3) != 0 {
		t.Error("left edge should be black after mirroring")
	}
	if frame.GetUCharAt(360, 1270*3) != 255 {
		t.Error("right edge should be white after mirroring")
	}

	cfg.Mirror = false
	plain := Prepare(src, cfg)
	defer plain.Close()
	if plain.GetUCharAt(360, 10*3) != 255 {
		t.Error("left edge should stay white without mirroring")
	}
}

func TestOpen_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := Open(cfg); err == nil {
		t.Error("expected error for invalid config")
	}
}
