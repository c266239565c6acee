package api

import (
	"time"

	"github.com/annavey/moodwell/internal/db"
	"github.com/annavey/moodwell/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	auth         *services.AuthService
	logs         *services.LogService
	analytics    *services.AnalyticsService
	loginLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, publisher services.LogPublisher) *Handler {
	if location == nil {
		location = time.UTC
	}
	repos := db.NewRepositories(database)
	return &Handler{
		secretKey:    []byte(secretKey),
		location:     location,
		auth:         services.NewAuthService(repos.Users),
		logs:         services.NewLogService(repos.DailyLogs, publisher, location),
		analytics:    services.NewAnalyticsService(repos.DailyLogs, location),
		loginLimiter: newAttemptLimiter(),
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
