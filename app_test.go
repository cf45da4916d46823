package taskbarclock

import (
	"errors"
	"image"
	"testing"

	"github.com/rpdg/taskbarclock/geom"
	"github.com/rpdg/taskbarclock/overlay"
	"github.com/rpdg/taskbarclock/taskbar"
)

type fakePlatform struct {
	classes   map[string][]uintptr
	bounds    map[uintptr]geom.Rect
	children  map[uintptr]map[string]uintptr
	parents   map[uintptr]uintptr
	placed    map[uintptr]geom.Rect
	hookFn    func(taskbar.Event)
	removed   int
	nextHwnd  uintptr
	created   []*overlay.Window
	destroyed []uintptr
	hookErr   error
	createErr map[int]error // keyed by 1-based CreateWindow call
}

func newFakePlatform() *fakePlatform {
	p := &fakePlatform{
		classes: map[string][]uintptr{
			taskbar.ClassPrimary:   {0x10},
			taskbar.ClassSecondary: {0x20, 0x30},
		},
		bounds: map[uintptr]geom.Rect{
			0x10: {X: 0, Y: 1040, Width: 1920, Height: 40},
			0x12: {X: 0, Y: 1040, Width: 1700, Height: 40},
			0x20: {X: 1920, Y: 1040, Width: 1920, Height: 40},
			0x22: {X: 1920, Y: 1040, Width: 1800, Height: 40},
			0x30: {X: -1280, Y: 0, Width: 1280, Height: 40},
			0x32: {X: -1280, Y: 0, Width: 1000, Height: 40},
		},
		children: map[uintptr]map[string]uintptr{
			0x10: {"ReBarWindow32": 0x11},
			0x11: {"MSTaskSwWClass": 0x12},
			0x20: {"WorkerW": 0x21},
			0x21: {"MSTaskListWClass": 0x22},
			0x30: {"WorkerW": 0x31},
			0x31: {"MSTaskListWClass": 0x32},
		},
		parents:  map[uintptr]uintptr{},
		placed:   map[uintptr]geom.Rect{},
		nextHwnd: 0x1000,
	}
	return p
}

func (p *fakePlatform) FindAll(class string) []uintptr { return p.classes[class] }

func (p *fakePlatform) Bounds(hwnd uintptr) (geom.Rect, bool) {
	r, ok := p.bounds[hwnd]
	return r, ok
}

func (p *fakePlatform) MonitorBounds(hwnd uintptr) (geom.Rect, bool) {
	b, ok := p.bounds[hwnd]
	if !ok {
		return geom.Rect{}, false
	}
	switch {
	case b.X < 0:
		return geom.Rect{X: -1280, Y: 0, Width: 1280, Height: 1024}, true
	case b.X >= 1920:
		return geom.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}, true
	default:
		return geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, true
	}
}

func (p *fakePlatform) FindChild(parent uintptr, path ...string) uintptr {
	cur := parent
	for _, class := range path {
		next, ok := p.children[cur][class]
		if !ok {
			return 0
		}
		cur = next
	}
	return cur
}

func (p *fakePlatform) SetHook(min, max uint32, fn func(taskbar.Event)) (uintptr, error) {
	if p.hookErr != nil {
		return 0, p.hookErr
	}
	p.hookFn = fn
	return 0x77, nil
}

func (p *fakePlatform) RemoveHook(uintptr) error {
	p.removed++
	return nil
}

func (p *fakePlatform) Reparent(child, parent uintptr) error {
	p.parents[child] = parent
	return nil
}

func (p *fakePlatform) SetPosSize(hwnd uintptr, pos geom.Point, size geom.Size) error {
	p.placed[hwnd] = geom.Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
	return nil
}

func (p *fakePlatform) Invalidate(uintptr) {}

func (p *fakePlatform) CreateWindow(w *overlay.Window) (uintptr, error) {
	if err := p.createErr[len(p.created)+1]; err != nil {
		return 0, err
	}
	p.nextHwnd++
	p.created = append(p.created, w)
	return p.nextHwnd, nil
}

func (p *fakePlatform) DestroyWindow(hwnd uintptr) error {
	p.destroyed = append(p.destroyed, hwnd)
	return nil
}

var nopRenderer = overlay.RendererFunc(func(*image.RGBA, int, int, bool, bool) {})

func TestNew_SkipPrimary(t *testing.T) {
	p := newFakePlatform()
	app, err := New(p, Options{Renderer: nopRenderer, SkipPrimary: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer app.Close()

	if len(app.Taskbars()) != 2 {
		t.Fatalf("expected 2 secondary taskbars, got %d", len(app.Taskbars()))
	}
	if _, ok := app.Overlay(0x10); ok {
		t.Fatalf("expected primary taskbar to be skipped")
	}

	w, ok := app.Overlay(0x20)
	if !ok {
		t.Fatalf("expected overlay for 0x20")
	}
	if p.parents[w.Handle()] != 0x22 {
		t.Fatalf("expected parent 0x22, got %#x", p.parents[w.Handle()])
	}
	if got := p.placed[w.Handle()]; got != (geom.Rect{X: 1720, Y: 0, Width: 80, Height: 40}) {
		t.Fatalf("unexpected placement %v", got)
	}

	top, _ := app.Overlay(0x30)
	if top.Taskbar().DockPosition() != geom.DockTop {
		t.Fatalf("expected top dock, got %v", top.Taskbar().DockPosition())
	}
	if got := p.placed[top.Handle()]; got != (geom.Rect{X: 920, Y: 0, Width: 80, Height: 40}) {
		t.Fatalf("unexpected placement %v", got)
	}
}

func TestNew_EmbedsEveryTaskbar(t *testing.T) {
	p := newFakePlatform()
	app, err := New(p, Options{Renderer: nopRenderer, Size: geom.Size{Width: 100, Height: 30}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w, ok := app.Overlay(0x10)
	if !ok {
		t.Fatalf("expected overlay in primary taskbar")
	}
	if p.parents[w.Handle()] != 0x12 {
		t.Fatalf("expected parent 0x12, got %#x", p.parents[w.Handle()])
	}
	if got := p.placed[w.Handle()]; got != (geom.Rect{X: 1600, Y: 0, Width: 100, Height: 40}) {
		t.Fatalf("unexpected placement %v", got)
	}
	if len(app.Taskbars()) != 3 || len(p.created) != 3 {
		t.Fatalf("expected 3 overlays, got %d taskbars and %d windows", len(app.Taskbars()), len(p.created))
	}
}

func TestNew_NoTaskbars(t *testing.T) {
	p := newFakePlatform()
	p.classes = map[string][]uintptr{}
	if _, err := New(p, Options{Renderer: nopRenderer}); !errors.Is(err, ErrNoTaskbars) {
		t.Fatalf("expected ErrNoTaskbars, got %v", err)
	}

	// Only a primary taskbar and primary excluded.
	p = newFakePlatform()
	delete(p.classes, taskbar.ClassSecondary)
	if _, err := New(p, Options{Renderer: nopRenderer, SkipPrimary: true}); !errors.Is(err, ErrNoTaskbars) {
		t.Fatalf("expected ErrNoTaskbars, got %v", err)
	}
	if p.hookFn != nil {
		t.Fatalf("expected no hook to be installed")
	}
}

func TestNew_NilRenderer(t *testing.T) {
	if _, err := New(newFakePlatform(), Options{}); !errors.Is(err, ErrNilRenderer) {
		t.Fatalf("expected ErrNilRenderer, got %v", err)
	}
}

func TestHookEvent_RepositionsOverlay(t *testing.T) {
	p := newFakePlatform()
	app, err := New(p, Options{Renderer: nopRenderer})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w, _ := app.Overlay(0x20)

	// The user docks the secondary taskbar to the right edge.
	p.bounds[0x20] = geom.Rect{X: 3780, Y: 0, Width: 60, Height: 1080}
	p.bounds[0x22] = geom.Rect{X: 3780, Y: 0, Width: 60, Height: 950}

	// A caret event for the same window must not relayout.
	p.hookFn(taskbar.Event{Type: taskbar.EventObjectLocationChange, Hwnd: 0x20, ObjectID: -8})
	if w.Taskbar().DockPosition() != geom.DockBottom {
		t.Fatalf("expected filtered event to be ignored")
	}

	p.hookFn(taskbar.Event{Type: taskbar.EventObjectLocationChange, Hwnd: 0x20})
	if w.Taskbar().DockPosition() != geom.DockRight {
		t.Fatalf("expected right dock, got %v", w.Taskbar().DockPosition())
	}
	if got := p.placed[w.Handle()]; got != (geom.Rect{X: 0, Y: 910, Width: 60, Height: 40}) {
		t.Fatalf("unexpected placement %v", got)
	}

	other, _ := app.Overlay(0x30)
	if got := p.placed[other.Handle()]; got != (geom.Rect{X: 920, Y: 0, Width: 80, Height: 40}) {
		t.Fatalf("expected other overlay untouched, got %v", got)
	}
}

func TestEmbed_OnePerTaskbar(t *testing.T) {
	p := newFakePlatform()
	app, err := New(p, Options{Renderer: nopRenderer})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := app.Embed(app.Taskbars()[0], nopRenderer, geom.Size{}); !errors.Is(err, ErrAlreadyEmbedded) {
		t.Fatalf("expected ErrAlreadyEmbedded, got %v", err)
	}
	if len(p.created) != 3 {
		t.Fatalf("expected 3 native windows, got %d", len(p.created))
	}
}

func TestClose_RemovesHookOnce(t *testing.T) {
	p := newFakePlatform()
	app, err := New(p, Options{Renderer: nopRenderer})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.removed != 1 {
		t.Fatalf("expected hook removed once, got %d", p.removed)
	}
}

func TestNew_HookFailureDestroysOverlays(t *testing.T) {
	p := newFakePlatform()
	p.hookErr = errors.New("access denied")

	if _, err := New(p, Options{Renderer: nopRenderer}); !errors.Is(err, ErrHookInstall) {
		t.Fatalf("expected ErrHookInstall, got %v", err)
	}
	if len(p.destroyed) != 3 {
		t.Fatalf("expected 3 destroyed windows, got %v", p.destroyed)
	}

	// The refs no longer drive the abandoned overlays.
	w := p.created[1]
	before := p.placed[w.Handle()]
	p.bounds[0x20] = geom.Rect{X: 1920, Y: 1030, Width: 1920, Height: 50}
	if !w.Taskbar().Update() {
		t.Fatalf("expected taskbar change")
	}
	if p.placed[w.Handle()] != before {
		t.Fatalf("expected no re-attach, got %v", p.placed[w.Handle()])
	}
}

func TestNew_CreateFailureDestroysEarlierOverlays(t *testing.T) {
	p := newFakePlatform()
	p.createErr = map[int]error{2: errors.New("out of handles")}

	if _, err := New(p, Options{Renderer: nopRenderer}); !errors.Is(err, ErrCreateWindow) {
		t.Fatalf("expected ErrCreateWindow, got %v", err)
	}
	if len(p.created) != 1 || len(p.destroyed) != 1 || p.destroyed[0] != p.created[0].Handle() {
		t.Fatalf("expected the first window to be destroyed, created=%d destroyed=%v", len(p.created), p.destroyed)
	}
	if p.hookFn != nil {
		t.Fatalf("expected no hook to be installed")
	}
}
