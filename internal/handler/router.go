package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, itemHandler *api.ItemHandler, userHandler *api.UserHandler, requestHandler *api.RequestHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, itemHandler, userHandler, requestHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.Identity())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, itemHandler *api.ItemHandler, userHandler *api.UserHandler, requestHandler *api.RequestHandler) {
	engine.GET("/health", healthCheck)

	bookings := engine.Group("/bookings")
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListForBooker},
			{Method: http.MethodGet, Path: "/owner", Handler: bookingHandler.ListForOwner},
			{Method: http.MethodGet, Path: "/:bookingId", Handler: bookingHandler.GetByID},
			{Method: http.MethodPatch, Path: "/:bookingId", Handler: bookingHandler.ChangeStatus},
		})
	}

	items := engine.Group("/items")
	{
		addRoutes(items, []route{
			{Method: http.MethodPost, Path: "", Handler: itemHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: itemHandler.ListForOwner},
			{Method: http.MethodGet, Path: "/search", Handler: itemHandler.Search},
			{Method: http.MethodGet, Path: "/:itemId", Handler: itemHandler.GetByID},
			{Method: http.MethodPatch, Path: "/:itemId", Handler: itemHandler.Update},
			{Method: http.MethodPost, Path: "/:itemId/comment", Handler: itemHandler.AddComment},
		})
	}

	requests := engine.Group("/requests")
	{
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: requestHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: requestHandler.ListOwn},
			{Method: http.MethodGet, Path: "/all", Handler: requestHandler.ListOthers},
			{Method: http.MethodGet, Path: "/:requestId", Handler: requestHandler.GetByID},
		})
	}

	users := engine.Group("/users")
	{
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: userHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: userHandler.ListAll},
			{Method: http.MethodGet, Path: "/:userId", Handler: userHandler.GetByID},
			{Method: http.MethodPatch, Path: "/:userId", Handler: userHandler.Update},
			{Method: http.MethodDelete, Path: "/:userId", Handler: userHandler.Delete},
		})
	}
}

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
