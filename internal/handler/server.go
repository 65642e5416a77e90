// Package handler contains the HTTP handlers for the relay endpoints.
package handler

import (
	"net/http"
	"time"

	"slack-translator/internal/services"
	"slack-translator/internal/store"
	"slack-translator/internal/tasks"
	"slack-translator/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/dig"
)

// Server holds the handler dependencies.
type Server struct {
	ConfigManager types.ConfigManager
	Dispatcher    tasks.Dispatcher
	Relay         *services.RelayService
	MeetingMode   *services.MeetingModeService
	Storage       store.Store
}

// ServerParams defines the dependencies for the Server.
type ServerParams struct {
	dig.In
	ConfigManager types.ConfigManager
	Dispatcher    tasks.Dispatcher
	Relay         *services.RelayService
	MeetingMode   *services.MeetingModeService
	Storage       store.Store
}

// NewServer is the constructor for Server, with dependencies injected by dig.
func NewServer(params ServerParams) *Server {
	return &Server{
		ConfigManager: params.ConfigManager,
		Dispatcher:    params.Dispatcher,
		Relay:         params.Relay,
		MeetingMode:   params.MeetingMode,
		Storage:       params.Storage,
	}
}

// Health handles the health check endpoint.
func (s *Server) Health(c *gin.Context) {
	healthStatus := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if startTime, exists := c.Get("serverStartTime"); exists {
		if st, ok := startTime.(time.Time); ok {
			healthStatus["uptime"] = time.Since(st).String()
		}
	}

	if s.Storage != nil {
		if _, err := s.Storage.Exists("health:probe"); err != nil {
			healthStatus["status"] = "unhealthy"
			healthStatus["store"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, healthStatus)
			return
		}
		healthStatus["store"] = "ok"
	}

	c.JSON(http.StatusOK, healthStatus)
}
