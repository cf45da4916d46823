//go:build windows

package window

import (
	"fmt"
)

// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 is (HANDLE)(-4)
var dpiAwarenessPerMonitorV2 = ^uintptr(3)

// EnablePerMonitorDPI makes window bounds report physical pixels. The
// overlay layout mixes the bounds of the taskbar and its button bar, which
// only agree when the process is per-monitor aware.
func EnablePerMonitorDPI() error {
	if ProcSetProcessDPIAwareness.Find() == nil {
		r, _, _ := ProcSetProcessDPIAwareness.Call(dpiAwarenessPerMonitorV2)
		if r != 0 {
			return nil
		}
	}
	// Pre Windows 10 1703: system aware is the best available.
	if ProcSetProcessDPIAware.Find() != nil {
		return fmt.Errorf("SetProcessDPIAware not found")
	}
	r, _, _ := ProcSetProcessDPIAware.Call()
	if r == 0 {
		return fmt.Errorf("SetProcessDPIAware failed")
	}
	return nil
}
