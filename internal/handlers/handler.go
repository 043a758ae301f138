package handlers

import (
	"time"

	_ "device_library/docs"
	"device_library/internal/logger"
	"device_library/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger

	streamDefault time.Duration
	streamMax     time.Duration
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		services:      services,
		log:           log,
		streamDefault: defaultInterval,
		streamMax:     maxInterval,
	}
}

// WithStreamInterval bounds the /ws push interval. Non-positive values keep
// the defaults.
func (h *Handler) WithStreamInterval(def, limit time.Duration) *Handler {
	if def > 0 {
		h.streamDefault = def
	}
	if limit > 0 {
		h.streamMax = limit
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Device list stream over the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/catalog", h.getCatalog)
		h.registerDeviceRoutes(api)
		h.registerEventRoutes(api)
	}
}

func (h *Handler) registerDeviceRoutes(api *gin.RouterGroup) {
	devices := api.Group("/devices")
	{
		devices.GET("", h.getDevices)
		devices.POST("/refresh", h.refreshDevices)
		// Body example: {"user_id":"42","device_id":"arduinoUno"}
		devices.POST("/select", h.selectDevice)
		devices.GET("/selected", h.getSelected)
	}
}

func (h *Handler) registerEventRoutes(api *gin.RouterGroup) {
	api.GET("/events", h.getEvents)
}
