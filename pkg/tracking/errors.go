package tracking

import "errors"

// Sentinel errors for the control loop.
var (
	// ErrInvalidZones is returned when the zone radii break their ordering.
	ErrInvalidZones = errors.New("tracking: invalid zones")

	// ErrNoPointer is returned when a controller is built without an actuator.
	ErrNoPointer = errors.New("tracking: pointer actuator required")
)
