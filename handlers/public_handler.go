package handlers

import (
	"github.com/fliqhq/fliq-backend/database"
	"github.com/fliqhq/fliq-backend/models"
	"github.com/fliqhq/fliq-backend/services"
	"github.com/gofiber/fiber/v2"
)

// BrowseProviders lists verified providers, optionally filtered by city
// and category.
func BrowseProviders(c *fiber.Ctx) error {
	city := c.Query("city")
	category := c.Query("category")

	query := database.DB.
		Preload("User").
		Preload("Services", "is_active = ?", true).
		Where("verified = ?", true)
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var providers []models.Provider
	query.Order("avg_rating desc").Find(&providers)

	return c.JSON(providers)
}

func GetProvider(c *fiber.Ctx) error {
	providerID := c.Params("providerId")

	var provider models.Provider
	err := database.DB.
		Preload("User").
		Preload("Services", "is_active = ?", true).
		Preload("Services.Extras").
		Where("user_id = ? AND verified = ?", providerID, true).
		First(&provider).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	return c.JSON(provider)
}

// GetCities serves the cached city list. A fetch failure degrades to an
// empty list instead of an error page.
func GetCities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"cities": services.FetchCities()})
}
