package image

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned pixel region with its origin at (X, Y).
type Rect struct {
	X, Y          int
	Width, Height int
}

// String formats the rect as "WxH+X+Y".
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Empty reports whether r has no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Within reports whether r lies entirely inside a width x height area.
// Sums that would overflow int are treated as outside.
func (r Rect) Within(width, height int) bool {
	if r.X < 0 || r.Y < 0 || r.Width < 0 || r.Height < 0 {
		return false
	}
	if r.X > math.MaxInt-r.Width || r.Y > math.MaxInt-r.Height {
		return false
	}
	return r.X+r.Width <= width && r.Y+r.Height <= height
}
