// Package geom holds the rectangle math shared by the taskbar tracker and
// the overlay window. All coordinates are physical pixels in the virtual
// desktop coordinate system and can be negative (a monitor left of the
// primary one).
package geom

import "fmt"

// Point is a position in virtual desktop or parent-client coordinates.
type Point struct {
	X int32
	Y int32
}

// Size is a width/height pair.
type Size struct {
	Width  int32
	Height int32
}

// Rect is a rectangle given by its origin and extent.
type Rect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// RectFromLTRB converts the Win32 RECT layout (left, top, right, bottom).
func RectFromLTRB(left, top, right, bottom int32) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rect) Right() int32  { return r.X + r.Width }
func (r Rect) Bottom() int32 { return r.Y + r.Height }

func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether o lies completely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
