//go:build windows

package window

import (
	"fmt"

	"github.com/lxn/win"

	"github.com/rpdg/taskbarclock/geom"
)

// Reparent turns child into a WS_CHILD window of parent.
func Reparent(child, parent uintptr) error {
	hwnd := win.HWND(child)
	style := win.GetWindowLong(hwnd, win.GWL_STYLE)
	win.SetWindowLong(hwnd, win.GWL_STYLE, style|win.WS_CHILD)
	win.SetParent(hwnd, win.HWND(parent))
	// SetParent returns the previous parent, which is 0 for a fresh popup.
	if win.GetParent(hwnd) != win.HWND(parent) {
		return fmt.Errorf("SetParent(%#x, %#x) failed", child, parent)
	}
	return nil
}

// SetPosSize positions hwnd relative to its parent and shows it, in one
// SetWindowPos call.
func SetPosSize(hwnd uintptr, pos geom.Point, size geom.Size) error {
	const flags = win.SWP_NOZORDER | win.SWP_NOACTIVATE | win.SWP_SHOWWINDOW
	if !win.SetWindowPos(win.HWND(hwnd), 0, pos.X, pos.Y, size.Width, size.Height, flags) {
		return fmt.Errorf("SetWindowPos(%#x) failed", hwnd)
	}
	return nil
}
