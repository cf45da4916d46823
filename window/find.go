//go:build windows

package window

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func utf16Ptr(s string) *uint16 {
	ptr, _ := windows.UTF16PtrFromString(s)
	return ptr
}

// enumMatches collects the result of one EnumWindows call. EnumWindows runs
// its callback synchronously, so a single callback serves every call.
var (
	enumClass   string
	enumMatches []uintptr
	enumProc    = windows.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		if ClassName(hwnd) == enumClass {
			enumMatches = append(enumMatches, hwnd)
		}
		return 1 // continue enumeration
	})
)

// ClassName returns the window class of hwnd, or "" if it cannot be read.
func ClassName(hwnd uintptr) string {
	var buf [256]uint16
	n, _, _ := ProcGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// FindAllByClass returns every top-level window of class, in z-order.
func FindAllByClass(class string) []uintptr {
	enumClass, enumMatches = class, nil
	ProcEnumWindows.Call(enumProc, 0)
	found := enumMatches
	enumMatches = nil
	return found
}

// FindChild descends from parent through the first child of each class in
// path and returns the last one, or 0 when a step is missing.
func FindChild(parent uintptr, path ...string) uintptr {
	cur := parent
	for _, class := range path {
		cur, _, _ = ProcFindWindowExW.Call(cur, 0, uintptr(unsafe.Pointer(utf16Ptr(class))), 0)
		if cur == 0 {
			return 0
		}
	}
	return cur
}

// IsValid reports whether hwnd identifies an existing window.
func IsValid(hwnd uintptr) bool {
	r, _, _ := ProcIsWindow.Call(hwnd)
	return r != 0
}
