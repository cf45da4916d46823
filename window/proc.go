//go:build windows

package window

import (
	"golang.org/x/sys/windows"
)

// Procs not wrapped by github.com/lxn/win.
var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	ProcFindWindowExW          = user32.NewProc("FindWindowExW")
	ProcEnumWindows            = user32.NewProc("EnumWindows")
	ProcGetClassNameW          = user32.NewProc("GetClassNameW")
	ProcIsWindow               = user32.NewProc("IsWindow")
	ProcSetWinEventHook        = user32.NewProc("SetWinEventHook")
	ProcUnhookWinEvent         = user32.NewProc("UnhookWinEvent")
	ProcSetTimer               = user32.NewProc("SetTimer")
	ProcPostThreadMessageW     = user32.NewProc("PostThreadMessageW")
	ProcKillTimer              = user32.NewProc("KillTimer")
	ProcSetProcessDPIAwareness = user32.NewProc("SetProcessDpiAwarenessContext")
	ProcSetProcessDPIAware     = user32.NewProc("SetProcessDPIAware")

	ProcSetDIBitsToDevice = gdi32.NewProc("SetDIBitsToDevice")
)
