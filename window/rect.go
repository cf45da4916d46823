//go:build windows

package window

import (
	"unsafe"

	"github.com/lxn/win"

	"github.com/rpdg/taskbarclock/geom"
)

// Bounds returns the screen rectangle of hwnd.
func Bounds(hwnd uintptr) (geom.Rect, bool) {
	var r win.RECT
	if !win.GetWindowRect(win.HWND(hwnd), &r) {
		return geom.Rect{}, false
	}
	return geom.RectFromLTRB(r.Left, r.Top, r.Right, r.Bottom), true
}

// ClientSize returns the size of the client area of hwnd.
func ClientSize(hwnd uintptr) geom.Size {
	var r win.RECT
	if !win.GetClientRect(win.HWND(hwnd), &r) {
		return geom.Size{}
	}
	return geom.Size{Width: r.Right - r.Left, Height: r.Bottom - r.Top}
}

// Monitor describes a display by its full bounds and work area.
type Monitor struct {
	Handle   uintptr
	Bounds   geom.Rect
	WorkArea geom.Rect // excludes the taskbars
	Primary  bool
}

// MonitorOf returns the monitor nearest to hwnd.
func MonitorOf(hwnd uintptr) (Monitor, bool) {
	hMon := win.MonitorFromWindow(win.HWND(hwnd), win.MONITOR_DEFAULTTONEAREST)
	if hMon == 0 {
		return Monitor{}, false
	}
	var mi win.MONITORINFO
	mi.CbSize = uint32(unsafe.Sizeof(mi))
	if !win.GetMonitorInfo(hMon, &mi) {
		return Monitor{}, false
	}
	return Monitor{
		Handle:   uintptr(hMon),
		Bounds:   geom.RectFromLTRB(mi.RcMonitor.Left, mi.RcMonitor.Top, mi.RcMonitor.Right, mi.RcMonitor.Bottom),
		WorkArea: geom.RectFromLTRB(mi.RcWork.Left, mi.RcWork.Top, mi.RcWork.Right, mi.RcWork.Bottom),
		Primary:  mi.DwFlags&1 != 0, // MONITORINFOF_PRIMARY
	}, true
}
