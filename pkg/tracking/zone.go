package tracking

// Zone is the movement bucket for a nose offset.
type Zone int

const (
	ZoneNone        Zone = iota // No offset computed this frame
	ZoneDead                    // Inside the slow radius
	ZoneSlow                    // Beyond slow
	ZoneNormal                  // Beyond normal
	ZoneFast                    // Beyond fast, within perimeter
	ZoneOutOfBounds             // Beyond perimeter
)

var zoneNames = map[Zone]string{
	ZoneNone:        "none",
	ZoneDead:        "dead",
	ZoneSlow:        "slow",
	ZoneNormal:      "normal",
	ZoneFast:        "fast",
	ZoneOutOfBounds: "out_of_bounds",
}

func (z Zone) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return "unknown"
}

// Divisor returns the offset divisor for the zone, or 0 when the zone does not move.
func (z Zone) Divisor() float64 {
	switch z {
	case ZoneFast:
		return 2.5
	case ZoneNormal:
		return 5
	case ZoneSlow:
		return 10
	default:
		return 0
	}
}

// Classify buckets an offset. Each axis is compared against the same radius;
// the zone is the outermost one either axis exceeds.
func Classify(dx, dy int, z Zones) Zone {
	exceeds := func(r int) bool {
		return dx > r || dx < -r || dy > r || dy < -r
	}

	switch {
	case exceeds(z.Perimeter):
		return ZoneOutOfBounds
	case exceeds(z.Fast):
		return ZoneFast
	case exceeds(z.Normal):
		return ZoneNormal
	case exceeds(z.Slow):
		return ZoneSlow
	default:
		return ZoneDead
	}
}

// Gesture is the eye-closure outcome for a frame.
type Gesture int

const (
	GestureNone       Gesture = iota
	GestureLeftClick          // Right eye closed
	GestureRightClick         // Left eye closed
	GestureReset              // Both eyes closed
)

func (g Gesture) String() string {
	switch g {
	case GestureLeftClick:
		return "left_click"
	case GestureRightClick:
		return "right_click"
	case GestureReset:
		return "reset"
	default:
		return "none"
	}
}

// Blink maps eyelid gaps to a gesture. Branch order matters: single-eye clicks first, reset last.
func Blink(rightGap, leftGap, threshold int) Gesture {
	rightClosed := rightGap < threshold
	leftClosed := leftGap < threshold

	switch {
	case rightClosed && !leftClosed:
		return GestureLeftClick
	case leftClosed && !rightClosed:
		return GestureRightClick
	case rightClosed && leftClosed:
		return GestureReset
	default:
		return GestureNone
	}
}

// MarshalText encodes the zone by name.
func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// MarshalText encodes the gesture by name.
func (g Gesture) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}
