package routes

import (
	"github.com/fliqhq/fliq-backend/handlers"
	"github.com/fliqhq/fliq-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/verifications/pending", handlers.ListPendingVerifications)
	admin.Post("/verifications/:providerId/approve", handlers.ApproveVerification)
	admin.Post("/verifications/:providerId/reject", handlers.RejectVerification)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)

	admin.Get("/bookings", handlers.AdminGetAllBookings)

	disputes := admin.Group("/disputes")
	disputes.Get("", handlers.AdminListDisputes)
	disputes.Post("/:disputeId/resolve", handlers.ResolveDispute)

	admin.Get("/activity-log", handlers.GetActivityLog)
	admin.Get("/dashboard-analytics", handlers.GetDashboardAnalytics)
}
