package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-desk/internal/handler/api"
	"hotel-desk/internal/handler/middleware"
	"hotel-desk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	roomHandler *api.RoomHandler,
	guestHandler *api.GuestHandler,
	reservationHandler *api.ReservationHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, roomHandler, guestHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// recovery first so it wraps everything below
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, roomHandler *api.RoomHandler, guestHandler *api.GuestHandler, reservationHandler *api.ReservationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/rooms", Handler: roomHandler.List},
			{Method: http.MethodGet, Path: "/room-types", Handler: roomHandler.ListTypes},
			{Method: http.MethodGet, Path: "/room-types/available", Handler: roomHandler.ListAvailableTypes},
			{Method: http.MethodGet, Path: "/availability", Handler: roomHandler.Availability},
		})

		guests := apiGroup.Group("/guests")
		{
			addRoutes(guests, []route{
				{Method: http.MethodPost, Path: "", Handler: guestHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: guestHandler.Find},
				{Method: http.MethodGet, Path: "/:id", Handler: guestHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: guestHandler.Update},
				{Method: http.MethodPatch, Path: "/:id", Handler: guestHandler.Patch},
				{Method: http.MethodDelete, Path: "/:id", Handler: guestHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: reservationHandler.ByGuest},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/next-number", Handler: reservationHandler.NextNumber},
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "/:number", Handler: reservationHandler.Get},
				{Method: http.MethodDelete, Path: "/:number", Handler: reservationHandler.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
