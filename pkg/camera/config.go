// Package camera captures mirrored, fixed-size frames from a local video device.
package camera

// Config holds all camera configuration parameters.
type Config struct {
	// === Device ===
	Device        int `json:"device"`         // Video device index
	CaptureWidth  int `json:"capture_width"`  // Resolution requested from the device
	CaptureHeight int `json:"capture_height"` // Resolution requested from the device
	Framerate     int `json:"framerate"`      // Requested FPS

	// === Processing ===
	// Frames are always resized to Width x Height before detection, so the
	// tracking radii keep their meaning whatever the device delivers.
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Mirror bool `json:"mirror"` // Flip horizontally so on-screen motion matches the user's

	// Quality is the JPEG quality used for preview frames (1-100).
	Quality int `json:"quality"`
}

// Processing resolution limits
const (
	MaxWidth  = 3840
	MaxHeight = 2160
)

// DefaultConfig returns the 1280x720 mirrored configuration.
func DefaultConfig() Config {
	return Config{
		Device:        0,
		CaptureWidth:  1280,
		CaptureHeight: 720,
		Framerate:     30,

		Width:  1280,
		Height: 720,
		Mirror: true,

		Quality: 70,
	}
}

// LegacyConfig requests 640x480 from the device.
// Use this for webcams that stall at higher resolutions.
func LegacyConfig() Config {
	cfg := DefaultConfig()
	cfg.CaptureWidth = 640
	cfg.CaptureHeight = 480
	return cfg
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.Device < 0 {
		errors = append(errors, "device must be non-negative")
	}

	// Capture resolution; 0 leaves the device default
	if c.CaptureWidth < 0 || c.CaptureWidth > MaxWidth {
		errors = append(errors, "capture_width must be between 0 and 3840")
	}
	if c.CaptureHeight < 0 || c.CaptureHeight > MaxHeight {
		errors = append(errors, "capture_height must be between 0 and 2160")
	}
	if c.Framerate < 0 || c.Framerate > 120 {
		errors = append(errors, "framerate must be between 0 and 120")
	}

	// Processing resolution
	if c.Width < 160 || c.Width > MaxWidth {
		errors = append(errors, "width must be between 160 and 3840")
	}
	if c.Height < 120 || c.Height > MaxHeight {
		errors = append(errors, "height must be between 120 and 2160")
	}

	if c.Quality < 1 || c.Quality > 100 {
		errors = append(errors, "quality must be between 1 and 100")
	}

	return errors
}
