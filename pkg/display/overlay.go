package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/teslashibe/go-nosemouse/pkg/tracking"
	"gocv.io/x/gocv"
)

// Overlay colors. gocv takes RGBA and converts to BGR itself.
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 0}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	Blue  = color.RGBA{R: 0, G: 0, B: 255, A: 0}
)

// Text positions, tuned for a 1280x720 frame.
var (
	outOfBoundsPos = image.Pt(380, 65)
	offsetXPos     = image.Pt(590, 65)
	offsetYPos     = image.Pt(690, 65)
	fpsPos         = image.Pt(50, 100)
)

// Ring is one zone circle.
type Ring struct {
	Radius int
	Color  color.RGBA
}

// Rings returns the zone circles, outermost first.
func Rings(z tracking.Zones) []Ring {
	return []Ring{
		{Radius: z.Perimeter, Color: White},
		{Radius: z.Fast, Color: Red},
		{Radius: z.Normal, Color: Green},
		{Radius: z.Slow, Color: Blue},
	}
}

// Labels returns the text drawn for a decision.
// Out of bounds shows a warning; any other non-dead zone shows the offset.
func Labels(d tracking.Decision) (warning string, offsetX, offsetY string) {
	switch d.Zone {
	case tracking.ZoneOutOfBounds:
		return "Out of the perimeter.", "", ""
	case tracking.ZoneSlow, tracking.ZoneNormal, tracking.ZoneFast:
		return "", fmt.Sprint(d.DX), fmt.Sprint(d.DY)
	default:
		return "", "", ""
	}
}

// Draw renders zone rings, the origin-to-nose line and status text for d.
func Draw(frame *gocv.Mat, d tracking.Decision, z tracking.Zones) {
	if !d.HasOrigin || d.Skipped {
		return
	}

	origin := image.Pt(d.Origin.X, d.Origin.Y)
	for _, r := range Rings(z) {
		gocv.Circle(frame, origin, r.Radius, r.Color, 1)
	}
	gocv.Line(frame, origin, image.Pt(d.Nose.X, d.Nose.Y), Green, 1)

	warning, dx, dy := Labels(d)
	if warning != "" {
		gocv.PutText(frame, warning, outOfBoundsPos, gocv.FontHersheyPlain, 3, Red, 3)
	}
	if dx != "" {
		gocv.PutText(frame, dx, offsetXPos, gocv.FontHersheyPlain, 2, Red, 2)
		gocv.PutText(frame, dy, offsetYPos, gocv.FontHersheyPlain, 2, Red, 2)
	}
}

// DrawFPS renders the frame-rate counter.
func DrawFPS(frame *gocv.Mat, fps float64) {
	gocv.PutText(frame, fmt.Sprint(int(fps)), fpsPos, gocv.FontHersheyPlain, 5, Blue, 5)
}
