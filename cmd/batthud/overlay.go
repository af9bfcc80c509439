package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/batthud/batthud/pkg/events"
	"github.com/batthud/batthud/pkg/hud"
	"github.com/batthud/batthud/pkg/platform"
	"github.com/batthud/batthud/pkg/power"
	"github.com/batthud/batthud/pkg/server"
)

// runOverlay hosts the overlay window on the main goroutine and the
// control API on a second one.
func runOverlay() error {
	opts := hud.DefaultOptions()
	opts.PollInterval = pollInterval
	opts.FlashInterval = flashInterval
	opts.Transparency = transparency

	hub := events.NewEventHub()
	overlay := hud.New(opts, power.NewSystemSource(), platform.NewPinner(opts.Title), hub)

	srv := server.New(overlay, hub)
	go func() {
		if err := srv.Run(unixSocketPath); err != nil {
			logrus.Errorf("control api exited: %v", err)
		}
	}()
	defer srv.Shutdown()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigc
		logrus.Infof("caught signal %q: shutting down", sig)
		overlay.RequestExit()
	}()

	logrus.WithFields(logrus.Fields{
		"pollInterval":  opts.PollInterval,
		"flashInterval": opts.FlashInterval,
		"transparency":  opts.Transparency,
	}).Info("starting overlay")

	return overlay.Run()
}
