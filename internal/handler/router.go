package handler

import (
	"net/http"

	"room-booking-bff/internal/handler/api"
	"room-booking-bff/internal/handler/middleware"
	"room-booking-bff/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// multipartOverhead leaves room for the form framing around the file part.
const multipartOverhead = 1 << 20

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Booking       *api.BookingHandler
	CancelRequest *api.CancelRequestHandler
	Rispat        *api.RispatHandler
	Room          *api.RoomHandler
	History       *api.HistoryHandler
	Notification  *api.NotificationHandler
	System        *api.SystemHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(cfg.Cookie))
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	uploadLimit := middleware.LimitBody(cfg.Upstream.MaxUploadBytes + multipartOverhead)

	engine.GET("/health", h.System.Health)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/server-time", Handler: h.System.ServerTime},
			{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.List},
			{Method: http.MethodGet, Path: "/history", Handler: h.History.List},
			{Method: http.MethodGet, Path: "/notifications", Handler: h.Notification.Pending},
			{Method: http.MethodGet, Path: "/rispat/:fileId", Handler: h.Rispat.Download},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Booking.Complete},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			{Method: http.MethodPost, Path: "/:id/cancel-requests", Handler: h.CancelRequest.Create},
			{Method: http.MethodGet, Path: "/:id/rispat", Handler: h.Rispat.List},
			{Method: http.MethodPost, Path: "/:id/rispat", Handler: h.Rispat.Upload, Mw: []gin.HandlerFunc{uploadLimit}},
			{Method: http.MethodDelete, Path: "/:id/rispat/:fileId", Handler: h.Rispat.Delete},
		})

		requests := apiGroup.Group("/cancel-requests")
		addRoutes(requests, []route{
			{Method: http.MethodGet, Path: "", Handler: h.CancelRequest.List},
			{Method: http.MethodPost, Path: "/:id/respond", Handler: h.CancelRequest.Respond},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
