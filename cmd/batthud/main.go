package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/batthud/batthud/pkg/client"
)

var (
	logLevel       = "info"
	unixSocketPath = filepath.Join(os.TempDir(), "batthud.sock")

	pollInterval  = 100 * time.Millisecond
	flashInterval = 500 * time.Millisecond
	transparency  = 100
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, client.ErrOverlayNotRunning) {
		fmt.Fprintln(os.Stderr, "\nError: the batthud overlay is not running")
		fmt.Fprintln(os.Stderr, "Start it first by running 'batthud' with no arguments")
	} else if errors.Is(err, client.ErrPermissionDenied) {
		fmt.Fprintln(os.Stderr, "\nError: Permission Denied")
		fmt.Fprintln(os.Stderr, "The control socket belongs to another user")
	}
}

func main() {
	// The windowing backend requires the event loop to stay on the
	// main OS thread.
	runtime.LockOSThread()

	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batthud",
		Short: "batthud is an always-on-top battery heads-up display",
		Long: `batthud renders battery percentage, time remaining, and a
color-coded health level as a draggable, semi-transparent overlay that
stays above every other window. Run it with no arguments to start the
overlay; the other commands talk to a running overlay over its control
socket.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runOverlay()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&unixSocketPath, "socket", unixSocketPath, "overlay control socket path")

	flags := cmd.Flags()
	flags.DurationVar(&pollInterval, "poll-interval", pollInterval, "power status poll interval")
	flags.DurationVar(&flashInterval, "flash-interval", flashInterval, "critical battery flash half-cycle")
	flags.IntVar(&transparency, "transparency", transparency, "initial transparency level (0-100, 100 = opaque)")

	cmd.AddCommand(
		NewStatusCommand(),
		NewTransparencyCommand(),
		NewVersionCommand(),
	)

	return cmd
}
