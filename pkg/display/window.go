// Package display shows processed frames with tracking overlays.
package display

import (
	"gocv.io/x/gocv"
)

// DefaultTitle is the window title.
const DefaultTitle = "Mouse Control"

// keyWait is how long Show waits for a key press.
const keyWait = 5 // milliseconds

// Window is an OpenCV highgui window.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a window with the given title.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Show displays frame and reports whether the user pressed q.
func (w *Window) Show(frame gocv.Mat) (quit bool) {
	w.win.IMShow(frame)
	return IsQuitKey(w.win.WaitKey(keyWait))
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}

// IsQuitKey reports whether a WaitKey result is q or Q.
func IsQuitKey(key int) bool {
	if key < 0 {
		return false
	}
	k := key & 0xFF
	return k == 'q' || k == 'Q'
}
