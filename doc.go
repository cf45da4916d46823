// Package taskbarclock embeds a clock into the secondary taskbars of the
// Windows shell.
// It finds the taskbar windows, places an overlay window inside the task
// button strip of each one, and follows the taskbars as the shell moves
// or resizes them, driven by a global WinEvent hook rather than polling.
//
// Key Features:
// - Primary and secondary taskbars, all four dock edges
// - Event driven re-layout (EVENT_OBJECT_LOCATIONCHANGE)
// - Pluggable content renderer
// - Explicit error handling
//
// Example:
//
//	desktop := window.NewDesktop()
//	app, err := taskbarclock.New(desktop, taskbarclock.Options{
//	    Renderer: &clock.Face{TimeFormat: "15:04"},
//	})
//	if err != nil {
//	    panic(err)
//	}
//	defer app.Close()
//	window.RunMessageLoop()
package taskbarclock
