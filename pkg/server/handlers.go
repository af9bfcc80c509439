package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/batthud/batthud/pkg/version"
)

func (s *Server) getStatus(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, s.state.Snapshot())
}

func (s *Server) getTransparency(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, s.state.Transparency())
}

// setTransparency accepts a level 0-100 where 100 is fully opaque,
// matching the settings slider.
func (s *Server) setTransparency(c *gin.Context) {
	var t int
	if err := c.BindJSON(&t); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	if t < 0 || t > 100 {
		err := fmt.Errorf("transparency must be between 0 and 100, got %d", t)
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	s.state.SetTransparency(t)
	logrus.Infof("set transparency to %d", t)

	c.IndentedJSON(http.StatusCreated, fmt.Sprintf("set transparency to %d", t))
}

func (s *Server) getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}

// getEvents streams overlay status updates as server-sent events.
func (s *Server) getEvents(c *gin.Context) {
	if s.hub == nil {
		c.IndentedJSON(http.StatusNotFound, "events not available")
		return
	}

	ch := s.hub.Subscribe()
	defer s.hub.Unsubscribe(ch)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, string(ev.Data))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
