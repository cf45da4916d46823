package geom

// DockPosition is the monitor edge a taskbar is attached to.
type DockPosition int

const (
	DockBottom DockPosition = iota
	DockTop
	DockLeft
	DockRight
)

func (d DockPosition) String() string {
	switch d {
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the taskbar runs along the top or bottom edge.
func (d DockPosition) Horizontal() bool {
	return d == DockTop || d == DockBottom
}

// DockFromBounds derives the dock edge of a taskbar from its bounds and the
// bounds of the monitor it lives on. A taskbar wider than tall is docked top
// or bottom, whichever edge it is closer to; otherwise left or right.
func DockFromBounds(taskbar, monitor Rect) DockPosition {
	if taskbar.Width >= taskbar.Height {
		if taskbar.Y-monitor.Y <= monitor.Bottom()-taskbar.Bottom() {
			return DockTop
		}
		return DockBottom
	}
	if taskbar.X-monitor.X <= monitor.Right()-taskbar.Right() {
		return DockLeft
	}
	return DockRight
}
