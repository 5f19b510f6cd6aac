package detection

import (
	"image"

	"github.com/teslashibe/go-nosemouse/pkg/landmark"
	"gocv.io/x/gocv"
)

// Result is one frame's detection output. A nil Result means no face.
type Result struct {
	Face      Detection       // Best face, normalized
	Box       image.Rectangle // Face box in frame pixels
	ROI       image.Rectangle // Square crop fed to the landmark model
	Landmarks landmark.Set
}

// GuideOptions selects which debugging guides RenderGuides draws.
type GuideOptions struct {
	Points   bool // Every mesh point
	Features bool // Eye outlines and nose-to-origin spokes
	Box      bool // Face box and landmark crop
}

// Provider turns frames into landmark sets.
type Provider interface {
	// Detect runs inference on a BGR frame. No face is (nil, nil).
	Detect(frame gocv.Mat) (*Result, error)

	// Positions lists landmark pixel positions; empty when no face was found.
	Positions(r *Result) landmark.Set

	// RenderGuides draws debugging overlays. It never changes control state.
	RenderGuides(frame *gocv.Mat, r *Result, opts GuideOptions)

	// Close releases model resources
	Close() error
}
