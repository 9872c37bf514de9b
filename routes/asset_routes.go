package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/kokushiworks/exam_bank/handlers"
)

func AssetRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	assets := api.Group("/exams/assets")
	assets.Post("/links", handlers.PatchAssetLinks)
	assets.Post("/sync", handlers.SyncAssetFolder)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws/progress", websocket.New(handlers.ServeProgressWs))
}
