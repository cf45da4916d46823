package taskbar

import (
	"slices"

	"github.com/rpdg/taskbarclock/geom"
)

// Ref tracks one taskbar window.
type Ref struct {
	shell     Shell
	hwnd      uintptr
	primary   bool
	bounds    geom.Rect
	dock      geom.DockPosition
	listeners []*listener
}

type listener struct{ fn func(*Ref) }

// NewRef creates a reference and reads the initial bounds of hwnd.
func NewRef(shell Shell, hwnd uintptr, primary bool) *Ref {
	r := &Ref{shell: shell, hwnd: hwnd, primary: primary}
	if bounds, dock, ok := r.query(); ok {
		r.bounds, r.dock = bounds, dock
	}
	return r
}

func (r *Ref) Handle() uintptr                 { return r.hwnd }
func (r *Ref) IsPrimary() bool                 { return r.primary }
func (r *Ref) Bounds() geom.Rect               { return r.bounds }
func (r *Ref) DockPosition() geom.DockPosition { return r.dock }

// ButtonBar resolves the task button container of this taskbar.
func (r *Ref) ButtonBar() uintptr { return ButtonBar(r.shell, r) }

// OnChange registers fn to be called whenever Update observes new bounds or
// a new dock position. The returned func unregisters it.
func (r *Ref) OnChange(fn func(*Ref)) (cancel func()) {
	l := &listener{fn: fn}
	r.listeners = append(r.listeners, l)
	return func() {
		r.listeners = slices.DeleteFunc(r.listeners, func(x *listener) bool { return x == l })
	}
}

// Update re-reads the bounds and dock position of the taskbar. Listeners are
// notified after the new state is stored, and only if something changed.
// It reports whether a change was observed.
func (r *Ref) Update() bool {
	bounds, dock, ok := r.query()
	if !ok || (bounds == r.bounds && dock == r.dock) {
		return false
	}
	r.bounds, r.dock = bounds, dock
	for _, l := range slices.Clone(r.listeners) {
		l.fn(r)
	}
	return true
}

func (r *Ref) query() (geom.Rect, geom.DockPosition, bool) {
	bounds, ok := r.shell.Bounds(r.hwnd)
	if !ok {
		return geom.Rect{}, 0, false
	}
	monitor, ok := r.shell.MonitorBounds(r.hwnd)
	if !ok {
		return geom.Rect{}, 0, false
	}
	return bounds, geom.DockFromBounds(bounds, monitor), true
}
