package routes

import (
	"github.com/fliqhq/fliq-backend/handlers"
	"github.com/fliqhq/fliq-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments", middleware.Protected())
	payments.Get("/banks", handlers.ListBanks)
	payments.Post("/resolve-account", handlers.ResolveAccount)
}
