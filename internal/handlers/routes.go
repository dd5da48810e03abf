package handlers

import (
	"net/http"

	"messaging-dashboard/config"
	"messaging-dashboard/internal/middleware"
	"messaging-dashboard/internal/models"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with every route of the dashboard service.
func NewRouter(cfg *config.Config, dashboard *DashboardHandler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORS(cfg))
	r.SetHTMLTemplate(Templates())

	r.GET("/", dashboard.ShowDashboard)
	r.GET("/dashboard/data", dashboard.GetDashboardData)
	r.GET("/charts/:name", dashboard.GetChart)
	r.GET("/health", Health(cfg))

	// Dev proxy: forward /api/* to the separately running messaging API
	if cfg.DevProxyEnabled {
		r.Any(middleware.ProxyPrefix+"/*proxyPath", middleware.DevProxy(cfg.ProxyHost, logger))
	}

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func Health(cfg *config.Config) gin.HandlerFunc {
	proxy := "disabled"
	if cfg.DevProxyEnabled {
		proxy = "enabled"
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:  "ok",
			Message: "Messaging analytics dashboard is running",
			Proxy:   proxy,
		})
	}
}
