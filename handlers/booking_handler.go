package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/fliqhq/fliq-backend/booking"
	"github.com/fliqhq/fliq-backend/database"
	"github.com/fliqhq/fliq-backend/models"
	"github.com/fliqhq/fliq-backend/notifications"
	"github.com/fliqhq/fliq-backend/pricing"
	"github.com/fliqhq/fliq-backend/services"
	"github.com/fliqhq/fliq-backend/utils"
	"github.com/fliqhq/fliq-backend/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateBookingRequest struct {
	ProviderID    string `json:"provider_id" validate:"required,uuid"`
	ServiceID     string `json:"service_id" validate:"omitempty,uuid"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time" validate:"required,datetime=15:04"`
	Duration      int64  `json:"duration" validate:"required,gt=0"`
	DurationUnit  string `json:"duration_unit" validate:"required,oneof=hours days weeks"`
	Location      string `json:"location" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=wallet card"`
}

type QuoteRequest struct {
	ProviderID   string `json:"provider_id" validate:"required,uuid"`
	ServiceID    string `json:"service_id" validate:"omitempty,uuid"`
	Duration     int64  `json:"duration" validate:"required"`
	DurationUnit string `json:"duration_unit" validate:"required,oneof=hours days weeks"`
}

// rateTableFor snapshots the pricing for a provider (and optionally one
// of their active services). Bookings copy these numbers at submission
// time and never re-read them.
func rateTableFor(provider *models.Provider, serviceID string) (pricing.RateTable, int, *uuid.UUID, error) {
	if serviceID == "" {
		return pricing.HourlyOnly(provider.HourlyRate), 1, nil, nil
	}

	var service models.Service
	err := database.DB.Where("id = ? AND provider_id = ? AND is_active = ?", serviceID, provider.UserID, true).
		First(&service).Error
	if err != nil {
		return pricing.RateTable{}, 0, nil, errors.New("active service not found for this provider")
	}

	rates := pricing.RateTable{
		Hourly: service.PriceHour,
		Daily:  service.PriceDay,
		Weekly: service.PriceWeek,
	}
	return rates, service.MinBookingHours, &service.ID, nil
}

// QuoteBooking returns a cost breakdown for live feedback while the
// client edits the schedule step. Pure computation, no writes.
func QuoteBooking(c *fiber.Ctx) error {
	var req QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var provider models.Provider
	if err := database.DB.Where("user_id = ?", req.ProviderID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	rates, _, _, err := rateTableFor(&provider, req.ServiceID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	quote := pricing.Quote(req.Duration, pricing.Unit(req.DurationUnit), rates)
	return c.JSON(fiber.Map{
		"quote":           quote,
		"available_units": rates.Units(),
	})
}

func CreateBooking(c *fiber.Ctx) error {
	clientID := currentUserID(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	providerID, _ := uuid.Parse(req.ProviderID)

	var provider models.Provider
	if err := database.DB.Preload("User").Where("user_id = ?", providerID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}
	if !provider.Verified {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "This provider is not yet verified"})
	}
	if provider.UserID == clientID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot book yourself"})
	}

	rates, minHours, serviceRef, err := rateTableFor(&provider, req.ServiceID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	reference, err := utils.GenerateBookingReference(database.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate booking reference"})
	}

	wizard := booking.NewWizard(&booking.GormStore{DB: database.DB}, clientID, providerID)
	wizard.ServiceID = serviceRef
	wizard.Category = provider.Category
	wizard.Reference = reference
	wizard.Rates = rates
	wizard.MinBookingHours = minHours
	wizard.Schedule = booking.Schedule{
		Date:      req.Date,
		StartTime: req.StartTime,
		Duration:  req.Duration,
		Unit:      pricing.Unit(req.DurationUnit),
		Location:  req.Location,
	}

	if err := wizard.Next(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := wizard.Next(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := wizard.SelectPayment(req.PaymentMethod); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	newBooking, err := wizard.Submit()
	if err != nil {
		log.Printf("🔥 Failed to create booking for client %s: %v", clientID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking, please try again."})
	}

	go notifications.SendEmail(provider.User.FullName, provider.User.Email, "You Have a New Booking Request!",
		"<h1>New Request</h1><p>A client has requested your services. Log in to accept or decline.</p>")
	websocket.NotifyBookingUpdate(&websocket.BookingEvent{
		BookingID:  newBooking.ID,
		Reference:  newBooking.Reference,
		Status:     newBooking.Status,
		ClientID:   newBooking.ClientID,
		ProviderID: newBooking.ProviderID,
	})

	return c.Status(fiber.StatusCreated).JSON(newBooking)
}

func GetMyBookings(c *fiber.Ctx) error {
	clientID := currentUserID(c)

	var bookings []models.Booking
	database.DB.
		Preload("Provider.User").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("start_time desc").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetProviderBookings(c *fiber.Ctx) error {
	providerID := currentUserID(c)

	var bookings []models.Booking
	database.DB.
		Preload("Client").
		Preload("Service").
		Where("provider_id = ?", providerID).
		Order("start_time desc").
		Find(&bookings)

	return c.JSON(bookings)
}

type CancelBookingRequest struct {
	Reason *string `json:"reason"`
}

func CancelBooking(c *fiber.Ctx) error {
	clientID := currentUserID(c)
	bookingID := c.Params("bookingId")

	var req CancelBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var b models.Booking
	if err := database.DB.First(&b, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if b.ClientID != clientID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your booking"})
	}
	if b.Status != models.BookingRequested && b.Status != models.BookingAccepted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only requested or accepted bookings can be cancelled"})
	}

	b.Status = models.BookingCancelled
	b.CancelReason = req.Reason
	if err := database.DB.Save(&b).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel booking"})
	}

	notifyBookingParties(&b)
	return c.JSON(fiber.Map{"message": "Booking cancelled"})
}

// transitionBooking moves the provider's booking between lifecycle
// states under a row lock, so two conflicting provider actions cannot
// interleave.
func transitionBooking(c *fiber.Ctx, from, to string) (*models.Booking, error) {
	providerID := currentUserID(c)
	bookingID := c.Params("bookingId")

	var b models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Client").
			First(&b, "id = ?", bookingID).Error; err != nil {
			return errors.New("booking not found")
		}
		if b.ProviderID != providerID {
			return errors.New("you are not the provider for this booking")
		}
		if b.Status != from {
			return errors.New("booking is not in the " + from + " state")
		}

		b.Status = to
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func AcceptBooking(c *fiber.Ctx) error {
	b, err := transitionBooking(c, models.BookingRequested, models.BookingAccepted)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	go notifications.SendEmail(b.Client.FullName, b.Client.Email, "Your Booking Was Accepted!",
		"<h1>Request Accepted</h1><p>Your provider has accepted booking "+b.Reference+". You will be notified when the service starts.</p>")
	notifyBookingParties(b)

	return c.JSON(b)
}

func DeclineBooking(c *fiber.Ctx) error {
	b, err := transitionBooking(c, models.BookingRequested, models.BookingCancelled)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	go notifications.SendEmail(b.Client.FullName, b.Client.Email, "Update on Your Booking Request",
		"<h1>Request Declined</h1><p>Unfortunately the provider declined booking "+b.Reference+". Your payment method was not charged.</p>")
	notifyBookingParties(b)

	return c.JSON(b)
}

func StartBooking(c *fiber.Ctx) error {
	b, err := transitionBooking(c, models.BookingAccepted, models.BookingInService)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	notifyBookingParties(b)
	return c.JSON(b)
}

func CompleteBooking(c *fiber.Ctx) error {
	providerID := currentUserID(c)
	bookingID := c.Params("bookingId")

	var b models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Client").
			Preload("Provider.User").
			First(&b, "id = ?", bookingID).Error; err != nil {
			return errors.New("booking not found")
		}
		if b.ProviderID != providerID {
			return errors.New("you are not the provider for this booking")
		}
		if b.Status != models.BookingInService {
			return errors.New("only in-service bookings can be completed")
		}
		if b.EndTime.After(time.Now()) {
			return errors.New("cannot complete a booking before its end time")
		}

		b.Status = models.BookingCompleted
		final := b.TotalAmount
		b.FinalAmount = &final
		if err := tx.Save(&b).Error; err != nil {
			return err
		}

		return tx.Model(&models.Provider{}).Where("user_id = ?", b.ProviderID).
			Update("payout_balance", gorm.Expr("payout_balance + ?", b.ProviderPayout)).Error
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	go services.GenerateBookingReceipt(b)
	notifyBookingParties(&b)

	return c.JSON(fiber.Map{"message": "Booking completed and earnings have been credited.", "booking": b})
}

func notifyBookingParties(b *models.Booking) {
	websocket.NotifyBookingUpdate(&websocket.BookingEvent{
		BookingID:  b.ID,
		Reference:  b.Reference,
		Status:     b.Status,
		ClientID:   b.ClientID,
		ProviderID: b.ProviderID,
	})
}
