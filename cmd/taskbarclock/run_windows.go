//go:build windows

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/rpdg/taskbarclock"
	"github.com/rpdg/taskbarclock/taskbar"
	"github.com/rpdg/taskbarclock/window"
)

func init() {
	// The hook callbacks and window messages are delivered to the thread
	// that installed them.
	runtime.LockOSThread()
}

func run(opts taskbarclock.Options, logger *slog.Logger) error {
	if err := window.EnablePerMonitorDPI(); err != nil {
		logger.Warn("failed to enable DPI awareness", "err", err)
	}

	app, err := taskbarclock.New(window.NewDesktop(), opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	thread := window.CurrentThreadID()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	stop := forwardInterrupt(interrupt, func() { window.QuitMessageLoop(thread) })
	defer func() {
		signal.Stop(interrupt)
		stop()
	}()

	logger.Info("running", "overlays", len(app.Taskbars()))
	if code := window.RunMessageLoop(); code != 0 {
		return fmt.Errorf("message loop exited with %d", code)
	}
	return nil
}

func list(out io.Writer, logger *slog.Logger) error {
	if err := window.EnablePerMonitorDPI(); err != nil {
		logger.Warn("failed to enable DPI awareness", "err", err)
	}
	refs := taskbar.ListTaskbars(window.NewDesktop())
	if len(refs) == 0 {
		return taskbarclock.ErrNoTaskbars
	}
	for _, r := range refs {
		kind := "secondary"
		if r.IsPrimary() {
			kind = "primary"
		}
		fmt.Fprintf(out, "%#x\t%s\t%v\t%s\tbuttons=%#x\n", r.Handle(), kind, r.Bounds(), r.DockPosition(), r.ButtonBar())
	}
	return nil
}

func showError(title, text string) {
	window.ShowError(title, text)
}
