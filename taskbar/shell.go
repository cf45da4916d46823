// Package taskbar discovers the taskbars owned by the Windows shell and keeps
// their bounds and dock edge in sync with the shell through a global
// WinEvent hook.
//
// Everything in this package runs on the UI thread that pumps messages for
// the hook; no method is safe for concurrent use.
package taskbar

import "github.com/rpdg/taskbarclock/geom"

// Window classes of the taskbar top-level windows.
const (
	ClassPrimary   = "Shell_TrayWnd"
	ClassSecondary = "Shell_SecondaryTrayWnd"
)

// Shell is the window enumeration primitive the locator and references
// depend on. Handles are raw HWND values.
type Shell interface {
	// FindAll returns every top-level window of the given class.
	FindAll(class string) []uintptr
	// Bounds returns the screen rectangle of hwnd, false if the window is gone.
	Bounds(hwnd uintptr) (geom.Rect, bool)
	// MonitorBounds returns the full bounds of the monitor nearest to hwnd.
	MonitorBounds(hwnd uintptr) (geom.Rect, bool)
	// FindChild walks down from parent, taking the first child of each class
	// in path. It returns 0 if any step is missing.
	FindChild(parent uintptr, path ...string) uintptr
}
