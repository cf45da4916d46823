//go:build windows

package window

import (
	"github.com/rpdg/taskbarclock/geom"
	"github.com/rpdg/taskbarclock/overlay"
	"github.com/rpdg/taskbarclock/taskbar"
)

// Desktop is the live Windows desktop. It serves as taskbar.Shell,
// taskbar.Hooker and overlay.Host.
type Desktop struct{}

func NewDesktop() *Desktop { return &Desktop{} }

func (*Desktop) FindAll(class string) []uintptr { return FindAllByClass(class) }

func (*Desktop) Bounds(hwnd uintptr) (geom.Rect, bool) {
	if !IsValid(hwnd) {
		return geom.Rect{}, false
	}
	return Bounds(hwnd)
}

func (*Desktop) MonitorBounds(hwnd uintptr) (geom.Rect, bool) {
	m, ok := MonitorOf(hwnd)
	return m.Bounds, ok
}

func (*Desktop) FindChild(parent uintptr, path ...string) uintptr {
	return FindChild(parent, path...)
}

func (*Desktop) SetHook(min, max uint32, fn func(taskbar.Event)) (uintptr, error) {
	return SetWinEventHook(min, max, fn)
}

func (*Desktop) RemoveHook(h uintptr) error { return UnhookWinEvent(h) }

func (*Desktop) Reparent(child, parent uintptr) error { return Reparent(child, parent) }

func (*Desktop) SetPosSize(hwnd uintptr, pos geom.Point, size geom.Size) error {
	return SetPosSize(hwnd, pos, size)
}

func (*Desktop) Invalidate(hwnd uintptr) { Invalidate(hwnd) }

func (*Desktop) CreateWindow(w *overlay.Window) (uintptr, error) {
	return CreateOverlayWindow(w)
}

func (*Desktop) DestroyWindow(hwnd uintptr) error { return DestroyOverlayWindow(hwnd) }
