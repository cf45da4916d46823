package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpdg/taskbarclock"
	"github.com/rpdg/taskbarclock/clock"
	"github.com/rpdg/taskbarclock/config"
	"github.com/rpdg/taskbarclock/geom"
)

const version = "0.1.0"

type flags struct {
	configPath  string
	logLevel    string
	skipPrimary bool
}

func main() {
	os.Exit(execute(newRootCmd()))
}

// execute runs root and reports a failure on its stderr, since cobra's own
// error output is silenced.
func execute(root *cobra.Command) int {
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "taskbarclock: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "taskbarclock",
		Short:         "Show a clock on the Windows taskbars",
		Long:          `taskbarclock embeds a clock into the task button strip of every Windows taskbar and keeps it in place while the taskbars move.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, f)
			if err != nil {
				return err
			}
			opts := taskbarclock.Options{
				Size:        geom.Size{Width: cfg.Width, Height: cfg.Height},
				SkipPrimary: cfg.SkipPrimary,
				Renderer:    &clock.Face{TimeFormat: cfg.TimeFormat, DateFormat: cfg.DateFormat},
				Logger:      logger,
			}
			err = run(opts, logger)
			if errors.Is(err, taskbarclock.ErrNoTaskbars) {
				showError("taskbarclock", "No taskbars found. Application will terminate.")
			}
			return err
		},
	}

	root.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default: <user config dir>/taskbarclock/config.yaml)")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warning, error")
	root.Flags().BoolVar(&f.skipPrimary, "skip-primary", false, "leave the primary taskbar without a clock")

	root.AddCommand(newListCmd(&f), newVersionCmd())
	return root
}

func newListCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the taskbars found on this desktop",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := setup(cmd, *f)
			if err != nil {
				return err
			}
			return list(cmd.OutOrStdout(), logger)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taskbarclock %s\n", version)
		},
	}
}

// setup loads the config and applies flag overrides on top of it.
func setup(cmd *cobra.Command, f flags) (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFromPath(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, err
	}

	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("skip-primary") {
		cfg.SkipPrimary = f.skipPrimary
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return cfg, logger, nil
}

// forwardInterrupt calls quit on the first signal from interrupt. The
// returned stop ends the forwarding goroutine and waits for it.
func forwardInterrupt(interrupt <-chan os.Signal, quit func()) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-interrupt:
			quit()
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}
