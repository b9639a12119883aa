package routes

import (
	"github.com/fliqhq/fliq-backend/handlers"
	"github.com/fliqhq/fliq-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("/me", handlers.GetProfile)
	profile.Put("/me", handlers.UpdateProfile)

	api.Get("/uploads/signature", middleware.Protected(), handlers.GenerateUploadSignature)
	api.Get("/notifications/ws", middleware.Protected(), handlers.WebsocketUpgrade, handlers.HandleNotificationSocket)
}
