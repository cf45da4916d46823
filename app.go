package taskbarclock

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rpdg/taskbarclock/geom"
	"github.com/rpdg/taskbarclock/overlay"
	"github.com/rpdg/taskbarclock/taskbar"
)

// Platform bundles the OS collaborators the application is built on.
type Platform interface {
	taskbar.Shell
	taskbar.Hooker
	overlay.Host
	// CreateWindow creates the native window backing w and routes its
	// paint and pointer messages to w.
	CreateWindow(w *overlay.Window) (uintptr, error)
	DestroyWindow(hwnd uintptr) error
}

// Options configures an App.
type Options struct {
	// Size is the overlay size; zero selects overlay.DefaultSize.
	Size geom.Size
	// SkipPrimary leaves the primary taskbar, which already shows the
	// system clock, without an overlay.
	SkipPrimary bool
	Renderer    overlay.Renderer
	Logger      *slog.Logger
}

// App embeds one overlay per tracked taskbar and owns the shell hook.
type App struct {
	platform Platform
	logger   *slog.Logger
	taskbars []*taskbar.Ref
	overlays map[uintptr]*overlay.Window
	hook     *taskbar.Hook
}

// New discovers the taskbars, embeds the overlays and installs the hook.
// It fails with ErrNoTaskbars when the shell exposes no taskbar at all or
// none is left after filtering. On any error the overlays created so far
// are destroyed again.
func New(p Platform, opts Options) (*App, error) {
	if opts.Renderer == nil {
		return nil, ErrNilRenderer
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	a := &App{
		platform: p,
		logger:   logger,
		overlays: make(map[uintptr]*overlay.Window),
	}

	for _, tb := range taskbar.ListTaskbars(p) {
		logger.Info("taskbar found",
			"hwnd", fmt.Sprintf("%#x", tb.Handle()),
			"primary", tb.IsPrimary(),
			"bounds", tb.Bounds().String(),
			"dock", tb.DockPosition().String())
		if tb.IsPrimary() && opts.SkipPrimary {
			continue
		}
		a.taskbars = append(a.taskbars, tb)
	}
	if len(a.taskbars) == 0 {
		return nil, ErrNoTaskbars
	}

	for _, tb := range a.taskbars {
		if _, err := a.Embed(tb, opts.Renderer, opts.Size); err != nil {
			a.destroyOverlays()
			return nil, err
		}
	}

	hook, err := taskbar.InstallHook(p, taskbar.NewSet(a.taskbars))
	if err != nil {
		a.destroyOverlays()
		return nil, err
	}
	a.hook = hook
	logger.Debug("shell event hook installed", "taskbars", len(a.taskbars))
	return a, nil
}

// Embed creates and shows an overlay inside tb. A taskbar hosts at most one
// overlay.
func (a *App) Embed(tb *taskbar.Ref, r overlay.Renderer, size geom.Size) (*overlay.Window, error) {
	if _, ok := a.overlays[tb.Handle()]; ok {
		return nil, ErrAlreadyEmbedded
	}

	w, err := overlay.New(tb, r, a.platform, size)
	if err != nil {
		return nil, err
	}
	w.OnAttachError = func(err error) {
		a.logger.Debug("overlay attach skipped", "hwnd", fmt.Sprintf("%#x", tb.Handle()), "err", err)
	}

	hwnd, err := a.platform.CreateWindow(w)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	if err := w.Show(hwnd); err != nil {
		w.OnAttachError(err)
	}
	a.overlays[tb.Handle()] = w
	return w, nil
}

func (a *App) destroyOverlays() {
	for hwnd, w := range a.overlays {
		w.Close()
		if err := a.platform.DestroyWindow(w.Handle()); err != nil {
			a.logger.Debug("destroy overlay", "hwnd", fmt.Sprintf("%#x", hwnd), "err", err)
		}
		delete(a.overlays, hwnd)
	}
}

// Taskbars returns the tracked taskbars.
func (a *App) Taskbars() []*taskbar.Ref { return a.taskbars }

// Overlay returns the overlay embedded in the taskbar hwnd.
func (a *App) Overlay(hwnd uintptr) (*overlay.Window, bool) {
	w, ok := a.overlays[hwnd]
	return w, ok
}

// Hook returns the shell event hook.
func (a *App) Hook() *taskbar.Hook { return a.hook }

// Close removes the shell event hook. It must run before the process exits.
func (a *App) Close() error {
	if a.hook == nil {
		return nil
	}
	err := a.hook.Close()
	if err != nil {
		return errors.Join(errors.New("failed to remove shell event hook"), err)
	}
	a.logger.Debug("shell event hook removed")
	return nil
}
