package api

import (
	"strconv"

	"github.com/annavey/moodwell/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) MoodTrend(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	windowDays := services.DefaultTrendWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return apiError(c, fiber.StatusBadRequest, "Days must be a positive integer")
		}
		windowDays = parsed
	}

	points, err := handler.analytics.MoodTrend(user.ID, windowDays)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(points)
}

func (handler *Handler) SleepStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := handler.analytics.SleepStats(user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}

func (handler *Handler) WeeklyAverages(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	averages, err := handler.analytics.WeeklyAverages(user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(averages)
}

func (handler *Handler) Correlations(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := services.DefaultCorrelationLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return apiError(c, fiber.StatusBadRequest, "Limit must be a positive integer")
		}
		limit = parsed
	}

	points, err := handler.analytics.CorrelationSnapshot(user.ID, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(points)
}

func (handler *Handler) SymptomAnalysis(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	period := c.Query("period", services.SymptomAnalysisWeek)
	analysis, err := handler.analytics.SymptomAnalysis(user.ID, period)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(analysis)
}
