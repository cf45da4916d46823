//go:build windows

package window

import (
	"fmt"
	"sync"

	"golang.org/x/sys/windows"

	"github.com/rpdg/taskbarclock/taskbar"
)

const (
	winEventOutOfContext   = 0x0000
	winEventSkipOwnProcess = 0x0002
)

// Out-of-context hooks are delivered through the message queue of the
// thread that installed them, so every callback runs on that thread.
var (
	hooksMu sync.Mutex
	hooks   = map[uintptr]func(taskbar.Event){}

	winEventProc = windows.NewCallback(func(hook, event, hwnd, idObject, idChild, thread, eventTime uintptr) uintptr {
		hooksMu.Lock()
		fn := hooks[hook]
		hooksMu.Unlock()
		if fn != nil {
			fn(taskbar.Event{
				Type:     uint32(event),
				Hwnd:     hwnd,
				ObjectID: int32(uint32(idObject)),
				ChildID:  int32(uint32(idChild)),
				Thread:   uint32(thread),
				Time:     uint32(eventTime),
			})
		}
		return 0
	})
)

// SetWinEventHook installs a global out-of-context hook for events in
// [min, max], skipping events raised by this process.
func SetWinEventHook(min, max uint32, fn func(taskbar.Event)) (uintptr, error) {
	h, _, err := ProcSetWinEventHook.Call(
		uintptr(min), uintptr(max),
		0, winEventProc,
		0, 0,
		winEventOutOfContext|winEventSkipOwnProcess,
	)
	if h == 0 {
		return 0, fmt.Errorf("SetWinEventHook: %w", err)
	}
	hooksMu.Lock()
	hooks[h] = fn
	hooksMu.Unlock()
	return h, nil
}

// UnhookWinEvent removes a hook installed by SetWinEventHook.
func UnhookWinEvent(h uintptr) error {
	hooksMu.Lock()
	delete(hooks, h)
	hooksMu.Unlock()

	r, _, err := ProcUnhookWinEvent.Call(h)
	if r == 0 {
		return fmt.Errorf("UnhookWinEvent: %w", err)
	}
	return nil
}
