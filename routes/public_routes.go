package routes

import (
	"github.com/fliqhq/fliq-backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	public := api.Group("/public")
	public.Get("/providers", handlers.BrowseProviders)
	public.Get("/providers/:providerId", handlers.GetProvider)
	public.Get("/cities", handlers.GetCities)
}
