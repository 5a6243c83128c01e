package controllers

import (
	"time"

	"dashboard/backend/config"
	"dashboard/backend/services"
	"dashboard/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// Ограничения параметра days для недельной активности
const (
	minActivityDays = 1
	maxActivityDays = 14
)

type DashboardController struct {
	Summary  *services.SummaryService
	Activity *services.ActivityService
	Cfg      *config.Config
}

func NewDashboardController(summary *services.SummaryService, activity *services.ActivityService, cfg *config.Config) *DashboardController {
	return &DashboardController{Summary: summary, Activity: activity, Cfg: cfg}
}

// GetSummary godoc
// @Summary Get dashboard summary
// @Description Returns KPIs, active course, per-course progress and next lessons
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard/summary [get]
func (dc *DashboardController) GetSummary(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, dc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	summary, err := dc.Summary.Summary(c.UserContext(), userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to build dashboard summary")
	}

	return utils.Success(c, fiber.StatusOK, summary)
}

// GetWeeklyActivity godoc
// @Summary Get weekly activity
// @Description Returns per-day activity buckets for the requested window
// @Tags dashboard
// @Accept json
// @Produce json
// @Param days query int false "Window size in days (1-14)" default(7)
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard/weekly-activity [get]
func (dc *DashboardController) GetWeeklyActivity(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, dc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	days := c.QueryInt("days", services.DefaultActivityDays)
	if days < minActivityDays {
		days = minActivityDays
	}
	if days > maxActivityDays {
		days = maxActivityDays
	}

	activity, err := dc.Activity.WeeklyActivity(c.UserContext(), userID, days, time.Now())
	if err != nil {
		return utils.InternalServerError(c, "Failed to build weekly activity")
	}

	return utils.Success(c, fiber.StatusOK, activity)
}

// GetStreak godoc
// @Summary Get current day streak
// @Description Returns the number of consecutive days with activity, ending today
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard/streak [get]
func (dc *DashboardController) GetStreak(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, dc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	streak, err := dc.Activity.Streak(c.UserContext(), userID, services.DefaultStreakWindow, time.Now())
	if err != nil {
		return utils.InternalServerError(c, "Failed to compute streak")
	}

	return utils.Success(c, fiber.StatusOK, streak)
}
