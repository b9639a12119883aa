package routes

import (
	"github.com/fliqhq/fliq-backend/handlers"
	"github.com/fliqhq/fliq-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Post("/quote", handlers.QuoteBooking)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)
	booking.Post("/:bookingId/dispute", handlers.OpenDispute)

	api.Get("/disputes/me", middleware.Protected(), handlers.GetMyDisputes)
}
