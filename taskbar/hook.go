package taskbar

import (
	"errors"
	"fmt"
)

// EventObjectLocationChange is EVENT_OBJECT_LOCATIONCHANGE.
const EventObjectLocationChange uint32 = 0x800B

// ErrHookInstall is returned when the OS refuses to install the hook.
var ErrHookInstall = errors.New("failed to install shell event hook")

// Event is one WinEvent notification.
type Event struct {
	Type     uint32
	Hwnd     uintptr
	ObjectID int32
	ChildID  int32
	Thread   uint32
	Time     uint32
}

// Hooker is the global event-hook primitive.
type Hooker interface {
	// SetHook installs a process-wide listener for events in [min, max].
	SetHook(min, max uint32, fn func(Event)) (uintptr, error)
	RemoveHook(handle uintptr) error
}

// Resolver maps a window handle to the tracked taskbar, if any.
type Resolver interface {
	Lookup(hwnd uintptr) (*Ref, bool)
}

// Set indexes references by handle. It implements Resolver.
type Set map[uintptr]*Ref

// NewSet indexes refs by their handle.
func NewSet(refs []*Ref) Set {
	s := make(Set, len(refs))
	for _, r := range refs {
		s[r.Handle()] = r
	}
	return s
}

func (s Set) Lookup(hwnd uintptr) (*Ref, bool) {
	r, ok := s[hwnd]
	return r, ok
}

// Hook owns the location-change subscription. It must be closed before the
// process exits.
type Hook struct {
	hooker   Hooker
	resolver Resolver
	handle   uintptr
}

// InstallHook subscribes to location changes of all windows and forwards
// the ones that belong to a taskbar known to resolver.
func InstallHook(hooker Hooker, resolver Resolver) (*Hook, error) {
	h := &Hook{hooker: hooker, resolver: resolver}
	handle, err := hooker.SetHook(EventObjectLocationChange, EventObjectLocationChange, func(ev Event) {
		h.Dispatch(ev)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHookInstall, err)
	}
	h.handle = handle
	return h, nil
}

// Dispatch handles one event. It reports whether a tracked taskbar was
// updated. Events about objects inside a window (caret, labels, scroll bars)
// carry a non-zero object or child id and are dropped before any lookup.
func (h *Hook) Dispatch(ev Event) bool {
	if ev.ObjectID != 0 || ev.ChildID != 0 {
		return false
	}
	r, ok := h.resolver.Lookup(ev.Hwnd)
	if !ok {
		return false
	}
	return r.Update()
}

// Close removes the hook. Calling it more than once is a no-op.
func (h *Hook) Close() error {
	if h.handle == 0 {
		return nil
	}
	handle := h.handle
	h.handle = 0
	return h.hooker.RemoveHook(handle)
}
