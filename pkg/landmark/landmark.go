// Package landmark defines the face-mesh landmark data model shared by the
// detector, the control loop and the overlays.
package landmark

import "fmt"

// Face-mesh landmark ids the control loop depends on.
const (
	NoseTip       = 4   // Mouse origin
	RightEyeLower = 145 // Right eye, middle of the lower eyelid
	RightEyeUpper = 159 // Right eye, middle of the upper eyelid
	LeftEyeLower  = 374 // Left eye, middle of the lower eyelid
	LeftEyeUpper  = 386 // Left eye, middle of the upper eyelid
)

// Mesh sizes produced by the face-mesh models.
const (
	MeshPoints        = 468 // Base face mesh
	RefinedMeshPoints = 478 // Face mesh with iris refinement
)

// Outlines used for drawing only.
var (
	RightEyeOutline = []int{133, 173, 157, 158, 159, 160, 161, 246, 33, 7, 163, 144, 145, 153, 154, 155}
	LeftEyeOutline  = []int{362, 398, 384, 385, 386, 387, 388, 466, 263, 249, 390, 373, 374, 380, 381, 382}
	NoseOutline     = []int{19, 354, 461, 457, 440, 363, 281, 5, 51, 134, 220, 237, 241, 125}
	OriginSpokes    = []int{5, 275, 45, 1}
)

// Point is a pixel coordinate in the processed frame.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) (dx, dy int) {
	return p.X - q.X, p.Y - q.Y
}

// Set maps landmark id to position. The slice index is the id.
type Set []Point

// Empty reports whether no face was found.
func (s Set) Empty() bool {
	return len(s) == 0
}

// At returns the position of landmark id.
func (s Set) At(id int) (Point, error) {
	if id < 0 || id >= len(s) {
		return Point{}, fmt.Errorf("%w: id %d (set has %d points)", ErrMissing, id, len(s))
	}
	return s[id], nil
}

// Gap returns the absolute horizontal and vertical pixel distance between two landmarks.
func (s Set) Gap(a, b int) (dx, dy int, err error) {
	pa, err := s.At(a)
	if err != nil {
		return 0, 0, err
	}
	pb, err := s.At(b)
	if err != nil {
		return 0, 0, err
	}
	dx, dy = pb.Sub(pa)
	return abs(dx), abs(dy), nil
}

// Require checks that every id is present.
func (s Set) Require(ids ...int) error {
	for _, id := range ids {
		if _, err := s.At(id); err != nil {
			return err
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
