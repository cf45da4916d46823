//go:build !windows

package main

import (
	"io"
	"log/slog"

	"github.com/rpdg/taskbarclock"
	"github.com/rpdg/taskbarclock/window"
)

func run(taskbarclock.Options, *slog.Logger) error { return window.ErrUnsupported }

func list(io.Writer, *slog.Logger) error { return window.ErrUnsupported }

func showError(title, text string) {}
