// Package window is the Win32 side of taskbarclock: window enumeration by
// class, bounds and monitor queries, reparenting, the WinEvent hook, and the
// native overlay window with its message loop.
//
// All of it is only available on Windows. Desktop implements the
// collaborator interfaces declared by the taskbar and overlay packages.
package window
