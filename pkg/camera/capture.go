package camera

import (
	"fmt"
	"image"
	"sync"

	"github.com/teslashibe/go-nosemouse/internal/log"
	"gocv.io/x/gocv"
)

// Capture reads frames from a video device.
type Capture struct {
	config Config
	device *gocv.VideoCapture
	raw    gocv.Mat

	mu     sync.Mutex
	closed bool
}

// Open opens the device in cfg and applies the requested capture mode.
func Open(cfg Config) (*Capture, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, errs)
	}

	device, err := gocv.OpenVideoCapture(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("%w %d: %v", ErrOpen, cfg.Device, err)
	}
	if !device.IsOpened() {
		device.Close()
		return nil, fmt.Errorf("%w %d", ErrOpen, cfg.Device)
	}

	if cfg.CaptureWidth > 0 && cfg.CaptureHeight > 0 {
		device.Set(gocv.VideoCaptureFrameWidth, float64(cfg.CaptureWidth))
		device.Set(gocv.VideoCaptureFrameHeight, float64(cfg.CaptureHeight))
	}
	if cfg.Framerate > 0 {
		device.Set(gocv.VideoCaptureFPS, float64(cfg.Framerate))
	}

	log.Info("camera opened",
		"device", cfg.Device,
		"capture_width", int(device.Get(gocv.VideoCaptureFrameWidth)),
		"capture_height", int(device.Get(gocv.VideoCaptureFrameHeight)),
		"fps", device.Get(gocv.VideoCaptureFPS))

	return &Capture{
		config: cfg,
		device: device,
		raw:    gocv.NewMat(),
	}, nil
}

// Config returns the capture configuration.
func (c *Capture) Config() Config {
	return c.config
}

// Read captures one frame, resized to Width x Height and mirrored when configured.
// The caller owns the returned Mat and must Close it.
func (c *Capture) Read() (gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return gocv.Mat{}, ErrClosed
	}

	if ok := c.device.Read(&c.raw); !ok || c.raw.Empty() {
		return gocv.Mat{}, fmt.Errorf("%w: device %d", ErrReadFailed, c.config.Device)
	}

	return Prepare(c.raw, c.config), nil
}

// Prepare resizes and mirrors src into a new Mat according to cfg.
func Prepare(src gocv.Mat, cfg Config) gocv.Mat {
	frame := gocv.NewMat()
	gocv.Resize(src, &frame, image.Pt(cfg.Width, cfg.Height), 0, 0, gocv.InterpolationLinear)
	if cfg.Mirror {
		gocv.Flip(frame, &frame, 1)
	}
	return frame
}

// FPS returns the frame rate reported by the device.
func (c *Capture) FPS() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0
	}
	return c.device.Get(gocv.VideoCaptureFPS)
}

// Close releases the device. Safe to call more than once.
func (c *Capture) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.raw.Close()
	return c.device.Close()
}
