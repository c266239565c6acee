package api

import (
	"time"

	"github.com/annavey/moodwell/internal/services"
	"github.com/gofiber/fiber/v2"
)

type logRequest struct {
	MoodLevel          int     `json:"moodLevel"`
	AnxietyLevel       int     `json:"anxietyLevel"`
	StressLevel        int     `json:"stressLevel"`
	SleepQuality       int     `json:"sleepQuality"`
	SleepHours         float64 `json:"sleepHours"`
	PhysicalActivity   string  `json:"physicalActivity"`
	SocialInteractions string  `json:"socialInteractions"`
	Symptoms           string  `json:"symptoms"`
	PrimarySymptom     string  `json:"primarySymptom"`
	SymptomSeverity    *int    `json:"symptomSeverity"`
	Date               string  `json:"date"`
}

func (request logRequest) toInput() services.LogEntryInput {
	return services.LogEntryInput{
		MoodLevel:          request.MoodLevel,
		AnxietyLevel:       request.AnxietyLevel,
		StressLevel:        request.StressLevel,
		SleepQuality:       request.SleepQuality,
		SleepHours:         request.SleepHours,
		PhysicalActivity:   request.PhysicalActivity,
		SocialInteractions: request.SocialInteractions,
		Symptoms:           request.Symptoms,
		PrimarySymptom:     request.PrimarySymptom,
		SymptomSeverity:    request.SymptomSeverity,
	}
}

func (handler *Handler) CreateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request logRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var effectiveAt *time.Time
	if request.Date != "" {
		parsed, err := handler.parseEffectiveDate(request.Date)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "Invalid date format")
		}
		effectiveAt = &parsed
	}

	entry, err := handler.logs.CreateLog(user.ID, request.toInput(), effectiveAt)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) ListLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logs, err := handler.analytics.AllLogs(user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(logs)
}

func (handler *Handler) FilterLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	period := c.Query("period")
	if period == "" {
		logs, err := handler.analytics.AllLogs(user.ID)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(logs)
	}

	start, end, err := services.ResolvePeriodRange(period, c.Query("startDate"), c.Query("endDate"), time.Now(), handler.location)
	if err != nil {
		return respondServiceError(c, err)
	}

	logs, err := handler.analytics.LogsInRange(user.ID, start, end)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(logs)
}

func (handler *Handler) UpdateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var request logRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	entry, err := handler.logs.UpdateLog(user.ID, c.Params("id"), request.toInput())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.logs.DeleteLog(user.ID, c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseEffectiveDate accepts either a full RFC 3339 timestamp or a bare
// calendar date.
func (handler *Handler) parseEffectiveDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.In(handler.location), nil
	}
	return services.ParseDayParam(raw, handler.location)
}
