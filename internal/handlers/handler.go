package handlers

import (
	"net/http"
	"time"

	"asset_maintenance/internal/logger"
	"asset_maintenance/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const statusOK = "ok"

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	streamInterval time.Duration
}

// Option customizes a Handler.
type Option func(*Handler)

// WithStreamInterval sets the default push interval of the board stream.
func WithStreamInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 && d <= maxInterval {
			h.streamInterval = d
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	registerValidatorTagNames()
	h := &Handler{services: services, log: log, streamInterval: defaultInterval}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live board over WebSocket; browsers pass the token as ?token=
	router.GET("/ws", h.authMiddleware, h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.authMiddleware)
	{
		h.registerMaintenanceRoutes(api)
		h.registerBoardRoutes(api)
		api.GET("/assets/:tag/maintenance", h.assetHistory)
	}
}

func (h *Handler) registerMaintenanceRoutes(api *gin.RouterGroup) {
	m := api.Group("/maintenance")
	{
		m.GET("", h.listMaintenance)
		m.POST("", h.createMaintenance)
		m.GET("/export", h.exportMaintenance)
		m.POST("/bulk", h.bulkUpdate)
		m.GET("/:id", h.getMaintenance)
		m.PATCH("/:id", h.updateMaintenance)
		m.POST("/:id/status", h.updateStatus)
		m.POST("/:id/comments", h.addComment)
		m.GET("/:id/timeline", h.getTimeline)
		m.POST("/:id/timeline", h.recordTimelineEntry)
	}
}

func (h *Handler) registerBoardRoutes(api *gin.RouterGroup) {
	b := api.Group("/board")
	{
		b.GET("", h.getBoard)
		b.GET("/legend", h.getLegend)
		// Body example: {"recordId":"MNT-004","overId":"in-progress","travel":42}
		b.POST("/drop", h.dropOnBoard)
		b.GET("/transition", h.currentTransition)
		b.POST("/transition/:id/confirm", h.confirmTransition)
		b.DELETE("/transition/:id", h.cancelTransition)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
