package handlers

import (
	"github.com/fliqhq/fliq-backend/database"
	"github.com/fliqhq/fliq-backend/models"
	"github.com/gofiber/fiber/v2"
)

type OpenDisputeRequest struct {
	Reason string `json:"reason" validate:"required,min=1"`
}

func OpenDispute(c *fiber.Ctx) error {
	userID := currentUserID(c)
	bookingID := c.Params("bookingId")

	var req OpenDisputeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var b models.Booking
	if err := database.DB.First(&b, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if b.ClientID != userID && b.ProviderID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not a party to this booking"})
	}

	var existing models.Dispute
	if err := database.DB.Where("booking_id = ? AND status = ?", b.ID, models.DisputeOpen).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "An open dispute already exists for this booking"})
	}

	dispute := models.Dispute{
		BookingID: b.ID,
		RaisedBy:  userID,
		Reason:    req.Reason,
	}
	if err := database.DB.Create(&dispute).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open dispute"})
	}

	return c.Status(fiber.StatusCreated).JSON(dispute)
}

func GetMyDisputes(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var disputes []models.Dispute
	database.DB.
		Preload("Booking").
		Where("raised_by = ?", userID).
		Order("created_at desc").
		Find(&disputes)

	return c.JSON(disputes)
}
