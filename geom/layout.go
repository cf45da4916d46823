package geom

// OverlayLayout computes the size of an overlay embedded in a taskbar's
// button bar and its position relative to the button bar's client origin.
//
// The overlay spans the full thickness of the taskbar and keeps target's
// extent along the taskbar. It sits flush against the trailing edge of the
// button bar: the right edge for top/bottom docks, the bottom edge for
// left/right docks.
func OverlayLayout(taskbar, buttonBar Rect, target Size, dock DockPosition) (Size, Point) {
	if dock.Horizontal() {
		return Size{Width: target.Width, Height: taskbar.Height},
			Point{X: buttonBar.Width - target.Width, Y: 0}
	}
	return Size{Width: taskbar.Width, Height: target.Height},
		Point{X: 0, Y: buttonBar.Height - target.Height}
}
