package api

import (
	"github.com/annavey/moodwell/internal/ws"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, handler *Handler, hub *ws.Hub) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Post("/", handler.CreateLog)
	logs.Get("/", handler.ListLogs)
	logs.Get("/filter", handler.FilterLogs)
	logs.Get("/trends/mood", handler.MoodTrend)
	logs.Get("/stats/sleep", handler.SleepStats)
	logs.Get("/stats/weekly", handler.WeeklyAverages)
	logs.Get("/stats/symptoms", handler.SymptomAnalysis)
	logs.Get("/correlations", handler.Correlations)
	logs.Put("/:id", handler.UpdateLog)
	logs.Delete("/:id", handler.DeleteLog)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(hub.Serve))
}
