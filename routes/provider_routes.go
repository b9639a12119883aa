package routes

import (
	"github.com/fliqhq/fliq-backend/handlers"
	"github.com/fliqhq/fliq-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProviderRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Any authenticated user may apply to become a provider.
	api.Post("/providers/apply", middleware.Protected(), handlers.ApplyToBeAProvider)

	provider := api.Group("/provider", middleware.Protected(), middleware.ProviderRequired())
	provider.Get("/me", handlers.GetMyProviderProfile)
	provider.Put("/me", handlers.UpdateMyProviderProfile)
	provider.Post("/documents", handlers.SubmitVerificationDocuments)

	services := provider.Group("/services")
	services.Post("", handlers.CreateService)
	services.Get("", handlers.GetMyServices)
	services.Put("/:serviceId", handlers.UpdateService)
	services.Patch("/:serviceId/active", handlers.ToggleService)
	services.Delete("/:serviceId", handlers.DeleteService)

	bookings := provider.Group("/bookings")
	bookings.Get("", handlers.GetProviderBookings)
	bookings.Post("/:bookingId/accept", handlers.AcceptBooking)
	bookings.Post("/:bookingId/decline", handlers.DeclineBooking)
	bookings.Post("/:bookingId/start", handlers.StartBooking)
	bookings.Post("/:bookingId/complete", handlers.CompleteBooking)

	payouts := provider.Group("/payout-account")
	payouts.Get("", handlers.GetMyPayoutAccount)
	payouts.Post("", handlers.UpsertPayoutAccount)
}
