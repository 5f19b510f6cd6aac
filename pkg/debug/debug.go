// Package debug holds the process-wide debug switches and their printf helpers.
package debug

import (
	"fmt"
	"io"
	"os"
)

// Enabled turns on general debug output (--debug)
var Enabled bool

// Tracking turns on one trace line per processed frame (--debug-tracking).
// At camera frame rate this is very noisy.
var Tracking bool

// Output receives all debug text. Tests swap it for a buffer.
var Output io.Writer = os.Stdout

// Log prints when Enabled is set
func Log(format string, args ...interface{}) {
	if Enabled {
		fmt.Fprintf(Output, format, args...)
	}
}

// TrackLog prints when Tracking is set
func TrackLog(format string, args ...interface{}) {
	if Tracking {
		fmt.Fprintf(Output, format, args...)
	}
}
