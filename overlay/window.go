// Package overlay embeds a custom drawn window into the task button strip of
// a taskbar and keeps it positioned while the shell moves the taskbar.
package overlay

import (
	"errors"
	"fmt"
	"image"

	"github.com/rpdg/taskbarclock/geom"
	"github.com/rpdg/taskbarclock/taskbar"
)

var (
	ErrNilTaskbar  = errors.New("overlay: taskbar reference is nil")
	ErrNilRenderer = errors.New("overlay: content renderer is nil")
	ErrNilHost     = errors.New("overlay: window host is nil")
	ErrNotShown    = errors.New("overlay: window has not been shown")

	// ErrTaskbarGone and ErrButtonBarNotFound are transient. The next
	// location change of the taskbar retries the attach.
	ErrTaskbarGone       = errors.New("overlay: taskbar window is gone")
	ErrButtonBarNotFound = errors.New("overlay: task button bar not found")
)

// DefaultSize is the overlay size used when none is given.
var DefaultSize = geom.Size{Width: 80, Height: 40}

// Window is an overlay bound to one taskbar.
type Window struct {
	taskbar  *taskbar.Ref
	renderer Renderer
	host     Host

	hwnd   uintptr
	target geom.Size
	actual geom.Size
	state  State
	detach func()

	// OnAttachError, if set, receives transient attach failures.
	OnAttachError func(error)
}

// New creates an overlay for tb. The overlay re-attaches itself every time
// tb reports new bounds. A zero target selects DefaultSize.
func New(tb *taskbar.Ref, renderer Renderer, host Host, target geom.Size) (*Window, error) {
	if tb == nil {
		return nil, ErrNilTaskbar
	}
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	if host == nil {
		return nil, ErrNilHost
	}
	if target.Width <= 0 || target.Height <= 0 {
		target = DefaultSize
	}

	w := &Window{taskbar: tb, renderer: renderer, host: host, target: target}
	w.detach = tb.OnChange(func(*taskbar.Ref) {
		if err := w.Attach(); err != nil && w.OnAttachError != nil {
			w.OnAttachError(err)
		}
	})
	return w, nil
}

func (w *Window) Taskbar() *taskbar.Ref { return w.taskbar }
func (w *Window) Handle() uintptr       { return w.hwnd }
func (w *Window) TargetSize() geom.Size { return w.target }
func (w *Window) Size() geom.Size       { return w.actual }
func (w *Window) State() State          { return w.state }

// Show binds the native window hwnd and performs the first attach.
func (w *Window) Show(hwnd uintptr) error {
	w.hwnd = hwnd
	return w.Attach()
}

// Attach moves the overlay into the taskbar's button bar and recomputes its
// size and position for the current dock edge. Reparenting into the same
// parent again only re-applies the geometry.
func (w *Window) Attach() error {
	if w.hwnd == 0 {
		return ErrNotShown
	}

	bounds, ok := w.host.Bounds(w.taskbar.Handle())
	if !ok {
		return ErrTaskbarGone
	}
	buttonBar := w.taskbar.ButtonBar()
	if buttonBar == 0 {
		return ErrButtonBarNotFound
	}
	if err := w.host.Reparent(w.hwnd, buttonBar); err != nil {
		return fmt.Errorf("reparent overlay: %w", err)
	}

	buttonBounds, ok := w.host.Bounds(buttonBar)
	if !ok {
		return ErrButtonBarNotFound
	}

	size, pos := geom.OverlayLayout(bounds, buttonBounds, w.target, w.taskbar.DockPosition())
	if err := w.host.SetPosSize(w.hwnd, pos, size); err != nil {
		return fmt.Errorf("position overlay: %w", err)
	}
	w.actual = size
	return nil
}

// Close stops following the taskbar. The native window is not touched.
func (w *Window) Close() {
	if w.detach != nil {
		w.detach()
		w.detach = nil
	}
}

// HandlePointer applies ev to the interaction state and requests a repaint
// when the state changed. It reports whether it did.
func (w *Window) HandlePointer(ev PointerEvent) bool {
	next, changed := Next(w.state, ev)
	if !changed {
		return false
	}
	w.state = next
	if w.hwnd != 0 {
		w.host.Invalidate(w.hwnd)
	}
	return true
}

// Paint renders the overlay into dst, which must cover the current size.
func (w *Window) Paint(dst *image.RGBA) {
	w.renderer.Render(dst, int(w.actual.Width), int(w.actual.Height), w.state != Idle, w.state == Pressed)
}
