package handlers

import (
	"errors"

	"github.com/fliqhq/fliq-backend/database"
	"github.com/fliqhq/fliq-backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ApplyToBeAProvider(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req ProviderApplication
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existingProvider models.Provider
	err := database.DB.Where("user_id = ?", userID).First(&existingProvider).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already have a provider profile."})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	newProfile := models.Provider{
		UserID:     userID,
		Category:   req.Category,
		City:       req.City,
		HourlyRate: req.HourlyRate,
		Headline:   req.Headline,
		Bio:        req.Bio,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newProfile).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).Update("role", "provider").Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create provider profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(newProfile)
}

func GetMyProviderProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var provider models.Provider
	if err := database.DB.Preload("Documents").Preload("Services.Extras").Preload("User").
		Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider profile not found"})
	}

	return c.JSON(fiber.Map{
		"provider":           provider,
		"verification_state": provider.VerificationState(),
	})
}

type UpdateProviderRequest struct {
	City       *string `json:"city"`
	HourlyRate *int64  `json:"hourly_rate"`
	Headline   *string `json:"headline"`
	Bio        *string `json:"bio"`
}

func UpdateMyProviderProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var provider models.Provider
	if err := database.DB.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider profile not found"})
	}

	var req UpdateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.City != nil {
		provider.City = *req.City
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Hourly rate must be positive"})
		}
		provider.HourlyRate = *req.HourlyRate
	}
	if req.Headline != nil {
		provider.Headline = req.Headline
	}
	if req.Bio != nil {
		provider.Bio = req.Bio
	}

	database.DB.Save(&provider)

	return c.JSON(provider)
}

type SubmitDocumentsRequest struct {
	Documents []struct {
		Kind    string `json:"kind" validate:"required,oneof=id_card address_proof certification"`
		FileURL string `json:"file_url" validate:"required,url"`
	} `json:"documents" validate:"required,min=1,dive"`
}

// SubmitVerificationDocuments attaches documents to the provider's
// profile. A rejected provider resubmitting returns to the pending
// queue: the previous review fields are cleared in the same write.
func SubmitVerificationDocuments(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req SubmitDocumentsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var provider models.Provider
	if err := database.DB.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider profile not found"})
	}
	if provider.Verified {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Your profile is already verified"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, doc := range req.Documents {
			record := models.VerificationDocument{
				ProviderID: provider.UserID,
				Kind:       doc.Kind,
				FileURL:    doc.FileURL,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		provider.ReviewedAt = nil
		provider.ReviewedBy = nil
		provider.RejectionReason = nil
		return tx.Save(&provider).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit documents"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Documents submitted for review"})
}

type ServiceRequest struct {
	Title           string  `json:"title" validate:"required,min=3"`
	Description     *string `json:"description"`
	PriceHour       *int64  `json:"price_hour" validate:"omitempty,gt=0"`
	PriceDay        *int64  `json:"price_day" validate:"omitempty,gt=0"`
	PriceWeek       *int64  `json:"price_week" validate:"omitempty,gt=0"`
	MinBookingHours int     `json:"min_booking_hours" validate:"omitempty,gte=1"`
	Extras          []struct {
		Name  string `json:"name" validate:"required"`
		Price int64  `json:"price" validate:"required,gt=0"`
	} `json:"extras" validate:"dive"`
}

func CreateService(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.PriceHour == nil && req.PriceDay == nil && req.PriceWeek == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "At least one of price_hour, price_day or price_week is required"})
	}

	minHours := req.MinBookingHours
	if minHours < 1 {
		minHours = 1
	}

	service := models.Service{
		ProviderID:      userID,
		Title:           req.Title,
		Description:     req.Description,
		PriceHour:       req.PriceHour,
		PriceDay:        req.PriceDay,
		PriceWeek:       req.PriceWeek,
		MinBookingHours: minHours,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&service).Error; err != nil {
			return err
		}
		for _, extra := range req.Extras {
			record := models.ServiceExtra{
				ServiceID: service.ID,
				Name:      extra.Name,
				Price:     extra.Price,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service"})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

func GetMyServices(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var services []models.Service
	database.DB.Preload("Extras").Where("provider_id = ?", userID).Find(&services)

	return c.JSON(services)
}

func UpdateService(c *fiber.Ctx) error {
	userID := currentUserID(c)
	serviceID := c.Params("serviceId")

	var service models.Service
	if err := database.DB.Where("id = ? AND provider_id = ?", serviceID, userID).First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.PriceHour == nil && req.PriceDay == nil && req.PriceWeek == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "At least one of price_hour, price_day or price_week is required"})
	}

	service.Title = req.Title
	service.Description = req.Description
	service.PriceHour = req.PriceHour
	service.PriceDay = req.PriceDay
	service.PriceWeek = req.PriceWeek
	if req.MinBookingHours >= 1 {
		service.MinBookingHours = req.MinBookingHours
	}

	// Extras are replaced wholesale with whatever the request carries.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&service).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServiceExtra{}).Error; err != nil {
			return err
		}
		for _, extra := range req.Extras {
			record := models.ServiceExtra{
				ServiceID: service.ID,
				Name:      extra.Name,
				Price:     extra.Price,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}

	return c.JSON(service)
}

type ToggleServiceRequest struct {
	IsActive bool `json:"is_active"`
}

func ToggleService(c *fiber.Ctx) error {
	userID := currentUserID(c)
	serviceID := c.Params("serviceId")

	var req ToggleServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var service models.Service
	if err := database.DB.Where("id = ? AND provider_id = ?", serviceID, userID).First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	if req.IsActive && !service.HasPrice() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "An active service needs at least one price tier"})
	}

	service.IsActive = req.IsActive
	database.DB.Save(&service)

	return c.JSON(service)
}

func DeleteService(c *fiber.Ctx) error {
	userID := currentUserID(c)
	serviceID := c.Params("serviceId")

	if _, err := uuid.Parse(serviceID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service ID format"})
	}

	result := database.DB.Where("provider_id = ?", userID).Delete(&models.Service{}, "id = ?", serviceID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete service"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
