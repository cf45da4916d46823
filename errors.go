package taskbarclock

import (
	"errors"

	"github.com/rpdg/taskbarclock/overlay"
	"github.com/rpdg/taskbarclock/taskbar"
)

var (
	// ErrNoTaskbars implies no taskbar window matched the shell's window classes.
	ErrNoTaskbars = errors.New("no taskbars found")

	// ErrAlreadyEmbedded implies an overlay already lives in the taskbar.
	ErrAlreadyEmbedded = errors.New("taskbar already hosts an overlay")

	// ErrCreateWindow implies the native overlay window could not be created.
	ErrCreateWindow = errors.New("failed to create overlay window")

	// ErrHookInstall implies SetWinEventHook failed.
	ErrHookInstall = taskbar.ErrHookInstall

	// ErrNilRenderer implies no content renderer was supplied.
	ErrNilRenderer = overlay.ErrNilRenderer
)
