package display

import "time"

// FPSMeter measures loop rate with exponential smoothing.
type FPSMeter struct {
	alpha float64
	last  time.Time
	fps   float64
}

// NewFPSMeter creates a meter. alpha is the weight of each new sample (0-1).
func NewFPSMeter(alpha float64) *FPSMeter {
	if alpha <= 0 || alpha > 1 {
		alpha = 0.1
	}
	return &FPSMeter{alpha: alpha}
}

// Tick records a frame at now and returns the smoothed rate.
func (m *FPSMeter) Tick(now time.Time) float64 {
	if !m.last.IsZero() {
		if dt := now.Sub(m.last).Seconds(); dt > 0 {
			sample := 1 / dt
			if m.fps == 0 {
				m.fps = sample
			} else {
				m.fps = m.alpha*sample + (1-m.alpha)*m.fps
			}
		}
	}
	m.last = now
	return m.fps
}

// FPS returns the current smoothed rate.
func (m *FPSMeter) FPS() float64 {
	return m.fps
}
