package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/server/handlers"
	"github.com/mamadbah2/poultryfarm/internal/server/middleware"
)

// Deps holds everything the router wires into routes.
type Deps struct {
	Auth          *handlers.AuthHandler
	Records       *handlers.RecordsHandler
	Dashboard     *handlers.DashboardHandler
	Authenticator middleware.Authenticator
	Health        gin.HandlerFunc
	Metrics       middleware.RequestObserver
	MetricsExport http.Handler
}

// New wires the Gin engine with required routes and middlewares.
func New(deps Deps, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	if deps.Health != nil {
		r.GET("/healthz", deps.Health)
	}
	if deps.MetricsExport != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsExport))
	}

	api := r.Group("/api")
	api.POST("/signup", deps.Auth.Signup)
	api.POST("/login", deps.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(deps.Authenticator))

	protected.GET("/dashboard-stats", deps.Dashboard.Stats)
	protected.GET("/reports/daily", deps.Dashboard.DailyReport)

	protected.GET("/flocks", deps.Records.ListFlocks)
	protected.POST("/flocks", deps.Records.CreateFlock)
	protected.GET("/flocks/:id", deps.Records.GetFlock)

	protected.GET("/feed", deps.Records.ListFeed)
	protected.POST("/feed", deps.Records.CreateFeed)

	protected.GET("/eggs", deps.Records.ListEggs)
	protected.POST("/eggs", deps.Records.CreateEggs)

	protected.GET("/mortality", deps.Records.ListMortality)
	protected.POST("/mortality", deps.Records.CreateMortality)

	protected.GET("/sales", deps.Records.ListSales)
	protected.POST("/sales", deps.Records.CreateSale)

	protected.GET("/vaccinations", deps.Records.ListVaccinations)
	protected.POST("/vaccinations", deps.Records.CreateVaccination)

	logger.Info("router initialized")
	return r
}
