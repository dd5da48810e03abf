// @title Messaging Analytics Dashboard
// @version 1.0
// @description Dashboard for aggregated message analytics: weekly activity and reply sentiment
// @contact.name API Support
// @contact.email support@example.com
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /

package main

import (
	"log"

	"messaging-dashboard/config"
	"messaging-dashboard/internal/handlers"
	"messaging-dashboard/internal/logger"
	"messaging-dashboard/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "messaging-dashboard/docs"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zl.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	analyticsClient := services.NewAnalyticsClient(cfg.AnalyticsBaseURL, cfg.AnalyticsTimeout, zl)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(analyticsClient, cfg, zl)

	r := handlers.NewRouter(cfg, dashboardHandler, zl)

	zl.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
		zap.String("analytics_base_url", cfg.AnalyticsBaseURL),
		zap.Bool("dev_proxy", cfg.DevProxyEnabled),
	)

	if err := r.Run(":" + cfg.Port); err != nil {
		zl.Fatal("failed to start server", zap.Error(err))
	}
}
