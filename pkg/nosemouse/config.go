// Package nosemouse wires the camera, landmark provider, control loop and
// pointer into the head-tracking mouse application.
package nosemouse

import (
	"fmt"
	"strings"

	"github.com/teslashibe/go-nosemouse/internal/config"
	"github.com/teslashibe/go-nosemouse/pkg/camera"
	"github.com/teslashibe/go-nosemouse/pkg/tracking"
	"github.com/teslashibe/go-nosemouse/pkg/tracking/detection"
)

// Config holds all configuration for the application.
// Flag parsing is done in cmd/nosemouse/main.go; this struct is data only.
type Config struct {
	// Debug enables verbose debug logging.
	Debug bool

	// DebugTracking prints a trace line for every processed frame.
	DebugTracking bool

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	Camera    camera.Config
	Tracking  tracking.Config
	Detection detection.Config

	// ModelDir holds the YuNet and face-mesh ONNX files.
	ModelDir string

	// Headless runs without a window; exit with SIGINT/SIGTERM.
	Headless bool

	// DryRun records pointer actions instead of moving the real cursor.
	DryRun bool

	// Guides draws landmark dots and eye outlines on the preview.
	Guides bool

	// DashboardPort enables the web dashboard when non-empty.
	DashboardPort string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		Camera:    camera.DefaultConfig(),
		Tracking:  tracking.DefaultConfig(),
		Detection: detection.DefaultConfig(),
		ModelDir:  config.DefaultModelDir,
		Guides:    true,
	}
}

// LoadEnvConfig applies environment overrides.
// Call this before flags are parsed so explicit flags win.
func (c *Config) LoadEnvConfig() {
	c.ModelDir = config.ModelDir(c.ModelDir)
	c.Camera.Device = config.CameraDevice(c.Camera.Device)
}

// ResolveModels points the detection config at files inside ModelDir.
func (c *Config) ResolveModels() {
	c.Detection.ModelPath = config.ModelPath(c.ModelDir, config.DefaultFaceModel)
	c.Detection.LandmarkModelPath = config.ModelPath(c.ModelDir, config.DefaultLandmarkModel)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.Tracking.Validate(); err != nil {
		return &ConfigError{Field: "Tracking", Message: err.Error()}
	}
	if errs := c.Camera.Validate(); len(errs) > 0 {
		return &ConfigError{Field: "Camera", Message: "camera: " + strings.Join(errs, "; ")}
	}
	if c.Detection.ConfidenceThresh <= 0 || c.Detection.ConfidenceThresh > 1 {
		return &ConfigError{
			Field:   "Detection",
			Message: fmt.Sprintf("detection confidence must be in (0, 1], got %v", c.Detection.ConfidenceThresh),
		}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
