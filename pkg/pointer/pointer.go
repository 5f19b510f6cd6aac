// Package pointer defines the OS pointer actuator used by the control loop.
package pointer

import (
	"log/slog"
	"sync"
)

// Button identifies a mouse button.
type Button int

const (
	// None means no click.
	None Button = iota
	Left
	Right
)

// String returns the button name understood by robotgo.
func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// MarshalText encodes the button by name.
func (b Button) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Actuator moves and clicks the OS pointer.
// Calls are fire-and-forget: implementations swallow their own failures.
type Actuator interface {
	MoveAbsolute(x, y int)
	MoveRelative(dx, dy float64)
	Click(b Button)
}

// Call records one actuator invocation.
type Call struct {
	Method string // "move_abs", "move_rel", "click"
	X, Y   float64
	Button Button
}

// Recorder is an in-memory Actuator. Used for tests and dry runs.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) MoveAbsolute(x, y int) {
	r.record(Call{Method: "move_abs", X: float64(x), Y: float64(y)})
}

func (r *Recorder) MoveRelative(dx, dy float64) {
	r.record(Call{Method: "move_rel", X: dx, Y: dy})
}

func (r *Recorder) Click(b Button) {
	r.record(Call{Method: "click", Button: b})
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many calls of method were recorded.
func (r *Recorder) Count(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// Logging wraps an Actuator and logs every call at debug level.
type Logging struct {
	next   Actuator
	logger *slog.Logger
}

// WithLogging decorates next. A nil logger uses slog.Default().
func WithLogging(next Actuator, logger *slog.Logger) *Logging {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logging{next: next, logger: logger.With("component", "pointer")}
}

func (l *Logging) MoveAbsolute(x, y int) {
	l.logger.Debug("move absolute", "x", x, "y", y)
	l.next.MoveAbsolute(x, y)
}

func (l *Logging) MoveRelative(dx, dy float64) {
	l.logger.Debug("move relative", "dx", dx, "dy", dy)
	l.next.MoveRelative(dx, dy)
}

func (l *Logging) Click(b Button) {
	l.logger.Debug("click", "button", b.String())
	l.next.Click(b)
}
