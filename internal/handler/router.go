package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"stay-admin/internal/domain/user"
	"stay-admin/internal/handler/api"
	"stay-admin/internal/handler/middleware"
	"stay-admin/internal/pkg/config"
	"stay-admin/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	Metrics        *metrics.Metrics
	AuthMiddleware *middleware.AuthMiddleware

	Accommodations *api.AccommodationHandler
	Bookings       *api.BookingHandler
	Sessions       *api.SessionHandler
	BlockedDates   *api.BlockedDateHandler
	Audit          *api.AuditHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	auth := p.AuthMiddleware

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Metrics.Registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	viewer := []gin.HandlerFunc{auth.RequireRoleAtLeast(user.RoleViewer)}
	operator := []gin.HandlerFunc{auth.RequireRoleAtLeast(user.RoleOperator)}
	admin := []gin.HandlerFunc{auth.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	apiGroup.Use(auth.RequireAuth())
	{
		accommodations := apiGroup.Group("/accommodations")
		addRoutes(accommodations, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Accommodations.List, Mw: viewer},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Accommodations.Get, Mw: viewer},
			{Method: http.MethodGet, Path: "/:id/coupons", Handler: p.Accommodations.Coupons, Mw: viewer},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: p.Accommodations.Availability, Mw: viewer},
			{Method: http.MethodGet, Path: "/:id/rates", Handler: p.Accommodations.Rates, Mw: viewer},
			{Method: http.MethodGet, Path: "/:id/calendar", Handler: p.Accommodations.Calendar, Mw: viewer},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "/quote", Handler: p.Bookings.Quote, Mw: viewer},
			{Method: http.MethodGet, Path: "/session", Handler: p.Sessions.Serve, Mw: viewer},
			{Method: http.MethodPost, Path: "", Handler: p.Bookings.Submit, Mw: operator},
		})

		blocked := apiGroup.Group("/blocked-dates")
		addRoutes(blocked, []route{
			{Method: http.MethodGet, Path: "", Handler: p.BlockedDates.List, Mw: viewer},
			{Method: http.MethodPost, Path: "", Handler: p.BlockedDates.Save, Mw: operator},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.BlockedDates.Delete, Mw: operator},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/audit-log", Handler: p.Audit.Recent, Mw: admin},
		})
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
