package tracking

import (
	"fmt"

	"github.com/teslashibe/go-nosemouse/pkg/landmark"
)

// Zones holds the concentric movement radii and the eye-closure threshold, in pixels.
// Radii are compared per axis against the nose offset from the origin.
type Zones struct {
	Slow      int // Dead zone edge; offsets beyond this move slowly
	Normal    int // Normal speed beyond this
	Fast      int // Fast speed beyond this
	Perimeter int // No movement beyond this

	ClosedEye int // Eyelid gap below this counts as closed
}

// DefaultZones returns radii tuned for a 1280x720 frame at arm's length.
func DefaultZones() Zones {
	return Zones{
		Slow:      15,
		Normal:    30,
		Fast:      45,
		Perimeter: 60,
		ClosedEye: 5,
	}
}

// Validate checks slow < normal < fast < perimeter, all positive, and a non-negative threshold.
func (z Zones) Validate() error {
	if z.Slow <= 0 {
		return fmt.Errorf("%w: slow radius must be positive, got %d", ErrInvalidZones, z.Slow)
	}
	if !(z.Slow < z.Normal && z.Normal < z.Fast && z.Fast < z.Perimeter) {
		return fmt.Errorf("%w: need slow < normal < fast < perimeter, got %d/%d/%d/%d",
			ErrInvalidZones, z.Slow, z.Normal, z.Fast, z.Perimeter)
	}
	if z.ClosedEye < 0 {
		return fmt.Errorf("%w: closed-eye threshold must be non-negative, got %d", ErrInvalidZones, z.ClosedEye)
	}
	return nil
}

// Landmarks maps the features the control loop reads to mesh ids.
type Landmarks struct {
	Nose          int
	RightEyeLower int
	RightEyeUpper int
	LeftEyeLower  int
	LeftEyeUpper  int
}

// DefaultLandmarks returns the face-mesh ids.
func DefaultLandmarks() Landmarks {
	return Landmarks{
		Nose:          landmark.NoseTip,
		RightEyeLower: landmark.RightEyeLower,
		RightEyeUpper: landmark.RightEyeUpper,
		LeftEyeLower:  landmark.LeftEyeLower,
		LeftEyeUpper:  landmark.LeftEyeUpper,
	}
}

// IDs lists every id the loop requires.
func (l Landmarks) IDs() []int {
	return []int{l.Nose, l.RightEyeLower, l.RightEyeUpper, l.LeftEyeLower, l.LeftEyeUpper}
}

// Config holds all parameters for the control loop.
type Config struct {
	Zones     Zones
	Landmarks Landmarks
}

// DefaultConfig returns the recommended configuration.
func DefaultConfig() Config {
	return Config{
		Zones:     DefaultZones(),
		Landmarks: DefaultLandmarks(),
	}
}

// Validate checks the zone invariants.
func (c Config) Validate() error {
	return c.Zones.Validate()
}
