package tracking

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/teslashibe/go-nosemouse/pkg/debug"
	"github.com/teslashibe/go-nosemouse/pkg/landmark"
	"github.com/teslashibe/go-nosemouse/pkg/pointer"
)

// Session is the period between origin establishment and the next reset.
type Session struct {
	ID      string         `json:"id"`
	Origin  landmark.Point `json:"origin"`
	Started time.Time      `json:"started"`
	Frames  int            `json:"frames"`
	Clicks  int            `json:"clicks"`
}

// Decision is everything the controller decided for one frame.
// Overlays and the dashboard render from it.
type Decision struct {
	Skipped     bool `json:"skipped"`     // Empty landmark set, nothing evaluated
	Established bool `json:"established"` // Origin was set this frame

	SessionID string         `json:"session_id,omitempty"`
	HasOrigin bool           `json:"has_origin"`
	Origin    landmark.Point `json:"origin"`
	Nose      landmark.Point `json:"nose"`

	DX   int  `json:"dx"`
	DY   int  `json:"dy"`
	Zone Zone `json:"zone"`

	Moved bool    `json:"moved"`
	MoveX float64 `json:"move_x"`
	MoveY float64 `json:"move_y"`

	RightGap int            `json:"right_gap"`
	LeftGap  int            `json:"left_gap"`
	Gesture  Gesture        `json:"gesture"`
	Click    pointer.Button `json:"click"`
	Reset    bool           `json:"reset"`
}

// Controller turns landmark sets into pointer movement and clicks.
type Controller struct {
	config  Config
	pointer pointer.Actuator
	logger  *slog.Logger

	mu      sync.RWMutex
	origin  *landmark.Point
	session *Session
}

// NewController creates a controller. The origin starts unset.
func NewController(config Config, p pointer.Actuator, logger *slog.Logger) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoPointer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		config:  config,
		pointer: p,
		logger:  logger.With("component", "tracking"),
	}, nil
}

// Config returns the controller configuration.
func (c *Controller) Config() Config {
	return c.config
}

// Origin returns the current origin and whether one is set.
func (c *Controller) Origin() (landmark.Point, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.origin == nil {
		return landmark.Point{}, false
	}
	return *c.origin, true
}

// Session returns a copy of the active session, or nil between sessions.
func (c *Controller) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// Reset unsets the origin. The next non-empty frame starts a new session.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked("manual")
}

// Step runs the control loop for one frame.
// An empty set leaves all state untouched. A non-empty set missing a required id is an error.
func (c *Controller) Step(set landmark.Set) (Decision, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if set.Empty() {
		d := Decision{Skipped: true}
		c.describeOrigin(&d)
		return d, nil
	}

	ids := c.config.Landmarks
	if err := set.Require(ids.IDs()...); err != nil {
		return Decision{}, fmt.Errorf("resolve landmarks: %w", err)
	}

	nose, _ := set.At(ids.Nose)
	d := Decision{Nose: nose}

	// First frame of a session only sets the baseline
	if c.origin == nil {
		c.establishLocked(nose)
		c.describeOrigin(&d)
		d.Established = true
		c.pointer.MoveAbsolute(nose.X, nose.Y)
		return d, nil
	}

	c.describeOrigin(&d)
	c.session.Frames++

	d.DX, d.DY = nose.Sub(*c.origin)
	d.Zone = Classify(d.DX, d.DY, c.config.Zones)
	if div := d.Zone.Divisor(); div > 0 {
		d.MoveX = float64(d.DX) / div
		d.MoveY = float64(d.DY) / div
		d.Moved = true
		c.pointer.MoveRelative(d.MoveX, d.MoveY)
	}

	_, d.RightGap, _ = set.Gap(ids.RightEyeLower, ids.RightEyeUpper)
	_, d.LeftGap, _ = set.Gap(ids.LeftEyeLower, ids.LeftEyeUpper)
	d.Gesture = Blink(d.RightGap, d.LeftGap, c.config.Zones.ClosedEye)

	switch d.Gesture {
	case GestureLeftClick:
		d.Click = pointer.Left
	case GestureRightClick:
		d.Click = pointer.Right
	case GestureReset:
		d.Reset = true
		c.resetLocked("eyes closed")
	}
	if d.Click != pointer.None {
		c.session.Clicks++
		c.pointer.Click(d.Click)
	}

	debug.TrackLog("👃 offset=(%d,%d) zone=%s eyes r=%d l=%d gesture=%s\n",
		d.DX, d.DY, d.Zone, d.RightGap, d.LeftGap, d.Gesture)

	return d, nil
}

func (c *Controller) establishLocked(nose landmark.Point) {
	origin := nose
	c.origin = &origin
	c.session = &Session{
		ID:      uuid.NewString(),
		Origin:  origin,
		Started: time.Now(),
	}
	c.logger.Info("session started", "session", c.session.ID, "x", origin.X, "y", origin.Y)
}

func (c *Controller) resetLocked(reason string) {
	if c.origin == nil {
		return
	}
	if c.session != nil {
		c.logger.Info("session ended",
			"session", c.session.ID,
			"reason", reason,
			"frames", c.session.Frames,
			"clicks", c.session.Clicks,
			"duration", time.Since(c.session.Started).Round(time.Millisecond))
	}
	c.origin = nil
	c.session = nil
}

func (c *Controller) describeOrigin(d *Decision) {
	if c.origin == nil {
		return
	}
	d.HasOrigin = true
	d.Origin = *c.origin
	if c.session != nil {
		d.SessionID = c.session.ID
	}
}
