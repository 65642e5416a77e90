// Package router assembles the gin engine and its routes.
package router

import (
	"time"

	"slack-translator/internal/handler"
	"slack-translator/internal/middleware"
	"slack-translator/internal/types"

	"github.com/gin-gonic/gin"
)

func NewRouter(
	serverHandler *handler.Server,
	configManager types.ConfigManager,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Register global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Logger(configManager.GetLogConfig()))
	router.Use(middleware.CORS(configManager.GetCORSConfig()))
	startTime := time.Now()
	router.Use(func(c *gin.Context) {
		c.Set("serverStartTime", startTime)
		c.Next()
	})

	registerSystemRoutes(router, serverHandler)
	registerRelayRoutes(router, serverHandler)

	return router
}

// registerSystemRoutes registers system-level routes
func registerSystemRoutes(router *gin.Engine, serverHandler *handler.Server) {
	router.GET("/health", serverHandler.Health)
}

// registerRelayRoutes registers the translation relay routes. The
// two-language direct command route is last so the static routes above it
// keep precedence over the :from/:to parameters.
func registerRelayRoutes(router *gin.Engine, serverHandler *handler.Server) {
	router.POST("/meeting_mode", serverHandler.Events)

	router.GET("/start_meeting_mode/:language1/:language2", serverHandler.StartMeetingMode)
	router.POST("/start_meeting_mode/:language1/:language2", serverHandler.StartMeetingMode)

	router.GET("/stop_meeting_mode/", serverHandler.StopMeetingMode)
	router.POST("/stop_meeting_mode/", serverHandler.StopMeetingMode)

	router.GET("/:from/:to", serverHandler.Translate)
	router.POST("/:from/:to", serverHandler.Translate)
}
