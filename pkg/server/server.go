// Package server exposes the overlay over a unix socket so the CLI
// can query status and adjust transparency while the window runs.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/batthud/batthud/pkg/events"
	"github.com/batthud/batthud/pkg/hud"
)

// OverlayState is the slice of the overlay the API needs.
type OverlayState interface {
	Snapshot() hud.Snapshot
	Transparency() int
	SetTransparency(int)
}

// Server serves the control API.
type Server struct {
	state OverlayState
	hub   *events.EventHub
	srv   *http.Server
}

func New(state OverlayState, hub *events.EventHub) *Server {
	return &Server{state: state, hub: hub}
}

func (s *Server) setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.GET("/status", s.getStatus)
	router.GET("/transparency", s.getTransparency)
	router.PUT("/transparency", s.setTransparency)
	router.GET("/version", s.getVersion)
	router.GET("/events", s.getEvents)

	return router
}

// Run serves HTTP on the unix socket until Shutdown. A stale socket
// left by a crashed process is removed first.
func (s *Server) Run(unixSocketPath string) error {
	router := s.setupRoutes()

	if err := os.Remove(unixSocketPath); err != nil && !os.IsNotExist(err) {
		return err
	}

	l, err := net.Listen("unix", unixSocketPath)
	if err != nil {
		return err
	}

	s.srv = &http.Server{
		Handler: router,
	}

	logrus.Infof("control api listening on %s", l.Addr().String())
	if err := s.srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown() {
	if s.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to shutdown control api: %v", err)
	}
}
