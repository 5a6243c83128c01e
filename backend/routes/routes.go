package routes

import (
	"dashboard/backend/config"
	"dashboard/backend/controllers"
	"dashboard/backend/middleware"
	"dashboard/backend/services"
	"dashboard/backend/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, st store.Querier, cfg *config.Config, logger *zap.Logger) {
	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Services
	progressService := services.NewProgressService(st)
	summaryService := services.NewSummaryService(st, progressService)
	activityService := services.NewActivityService(st, logger)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(summaryService, activityService, cfg)
	dashboard := app.Group("/api/dashboard", authMiddleware)
	dashboard.Get("/summary", dashboardController.GetSummary)
	dashboard.Get("/weekly-activity", dashboardController.GetWeeklyActivity)
	dashboard.Get("/streak", dashboardController.GetStreak)
}
