package overlay

import (
	"image"

	"github.com/rpdg/taskbarclock/geom"
)

// Host is the low-level windowing primitive the overlay is applied through.
type Host interface {
	// Bounds returns the screen rectangle of hwnd, false if it is gone.
	Bounds(hwnd uintptr) (geom.Rect, bool)
	// Reparent sets WS_CHILD on child and makes it a child of parent.
	Reparent(child, parent uintptr) error
	// SetPosSize moves and sizes hwnd in one call, relative to its parent.
	SetPosSize(hwnd uintptr, pos geom.Point, size geom.Size) error
	// Invalidate requests a repaint of hwnd.
	Invalidate(hwnd uintptr)
}

// Renderer draws the overlay content. It is a pure function of the surface
// size and the interaction state and must not block.
type Renderer interface {
	Render(dst *image.RGBA, width, height int, hovered, pressed bool)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(dst *image.RGBA, width, height int, hovered, pressed bool)

func (f RendererFunc) Render(dst *image.RGBA, width, height int, hovered, pressed bool) {
	f(dst, width, height, hovered, pressed)
}
