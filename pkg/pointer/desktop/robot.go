// Package desktop drives the real OS pointer through robotgo.
// X11 is required on Linux; Wayland sessions ignore synthetic pointer events.
package desktop

import (
	"math"
	"sync"

	"github.com/go-vgo/robotgo"
	"github.com/teslashibe/go-nosemouse/pkg/pointer"
)

// Robot implements pointer.Actuator with robotgo.
type Robot struct {
	mu sync.Mutex

	// Sub-pixel remainder carried between relative moves
	carryX, carryY float64
}

// New creates a robotgo-backed actuator.
func New() *Robot {
	return &Robot{}
}

// ScreenSize returns the primary display size in pixels.
func ScreenSize() (width, height int) {
	return robotgo.GetScreenSize()
}

// MoveAbsolute moves the pointer to (x, y) and drops any carried remainder.
func (r *Robot) MoveAbsolute(x, y int) {
	r.mu.Lock()
	r.carryX, r.carryY = 0, 0
	r.mu.Unlock()
	robotgo.Move(x, y)
}

// MoveRelative moves the pointer by (dx, dy), rounding to whole pixels.
func (r *Robot) MoveRelative(dx, dy float64) {
	r.mu.Lock()
	stepX, stepY := r.step(dx, dy)
	r.mu.Unlock()

	if stepX == 0 && stepY == 0 {
		return
	}
	robotgo.MoveRelative(stepX, stepY)
}

// step converts a fractional move to whole pixels, keeping the remainder.
func (r *Robot) step(dx, dy float64) (int, int) {
	x := dx + r.carryX
	y := dy + r.carryY
	sx, sy := math.Round(x), math.Round(y)
	r.carryX, r.carryY = x-sx, y-sy
	return int(sx), int(sy)
}

// Click presses and releases b.
func (r *Robot) Click(b pointer.Button) {
	if b == pointer.None {
		return
	}
	robotgo.Click(b.String())
}

var _ pointer.Actuator = (*Robot)(nil)
