package handlers

import (
	"time"

	"github.com/fliqhq/fliq-backend/database"
	"github.com/fliqhq/fliq-backend/models"
	"github.com/fliqhq/fliq-backend/notifications"
	"github.com/fliqhq/fliq-backend/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListPendingVerifications returns providers waiting for review. Only
// profiles with at least one submitted document enter the queue; the
// approve/reject operations themselves do not re-check this.
func ListPendingVerifications(c *fiber.Ctx) error {
	var pendingProviders []models.Provider
	err := database.DB.
		Preload("User").
		Preload("Documents").
		Where("verified = ? AND reviewed_at IS NULL", false).
		Where("EXISTS (SELECT 1 FROM verification_documents WHERE verification_documents.provider_id = providers.user_id)").
		Find(&pendingProviders).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(pendingProviders)
}

func ApproveVerification(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	providerID := c.Params("providerId")

	var provider models.Provider
	if err := database.DB.Preload("User").Where("user_id = ?", providerID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}
	if provider.ReviewedAt != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This application has already been reviewed"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		provider.Verified = true
		provider.ReviewedAt = &now
		provider.ReviewedBy = &adminID
		provider.RejectionReason = nil
		if err := tx.Save(&provider).Error; err != nil {
			return err
		}
		return services.LogActivity(tx, adminID, models.ActionVerificationApproved, provider.UserID, nil)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to approve verification"})
	}

	go notifications.SendEmail(
		provider.User.FullName,
		provider.User.Email,
		"Your fliQ Profile has been Verified!",
		"<h1>Congratulations!</h1><p>Your verification was approved. Your profile is now visible to clients and you can receive bookings.</p>",
	)

	return c.JSON(fiber.Map{"message": "Provider verified successfully"})
}

type RejectVerificationRequest struct {
	Reason string `json:"reason" validate:"required,min=1"`
}

func RejectVerification(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	providerID := c.Params("providerId")

	var req RejectVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	// An empty reason never reaches the database.
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var provider models.Provider
	if err := database.DB.Preload("User").Where("user_id = ?", providerID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}
	if provider.ReviewedAt != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This application has already been reviewed"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		provider.Verified = false
		provider.ReviewedAt = &now
		provider.ReviewedBy = &adminID
		provider.RejectionReason = &req.Reason
		if err := tx.Save(&provider).Error; err != nil {
			return err
		}
		return services.LogActivity(tx, adminID, models.ActionVerificationRejected, provider.UserID, &req.Reason)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reject verification"})
	}

	go notifications.SendEmail(
		provider.User.FullName,
		provider.User.Email,
		"Update on Your fliQ Verification",
		"<h1>Verification Update</h1><p>Your verification was not approved: "+req.Reason+"</p><p>You may correct the issue and resubmit your documents.</p>",
	)

	return c.JSON(fiber.Map{"message": "Provider verification rejected"})
}

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	database.DB.Order("created_at desc").Find(&users)
	return c.JSON(users)
}

type ToggleUserStatusRequest struct {
	IsActive bool `json:"is_active"`
}

func ToggleUserStatus(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	userID := c.Params("userId")

	var req ToggleUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = req.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user status"})
	}

	action := models.ActionUserSuspended
	if req.IsActive {
		action = models.ActionUserReactivated
	}
	services.LogActivityAsync(adminID, action, user.ID, nil)

	return c.JSON(user)
}

func AdminGetAllBookings(c *fiber.Ctx) error {
	status := c.Query("status")

	query := database.DB.
		Preload("Client").
		Preload("Provider.User").
		Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	query.Find(&bookings)
	return c.JSON(bookings)
}

func AdminListDisputes(c *fiber.Ctx) error {
	var disputes []models.Dispute
	database.DB.
		Preload("Booking.Client").
		Preload("Booking.Provider.User").
		Order("created_at desc").
		Find(&disputes)
	return c.JSON(disputes)
}

type ResolveDisputeRequest struct {
	Resolution string `json:"resolution" validate:"required,min=1"`
}

func ResolveDispute(c *fiber.Ctx) error {
	adminID := currentUserID(c)
	disputeID := c.Params("disputeId")

	var req ResolveDisputeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var dispute models.Dispute
	if err := database.DB.First(&dispute, "id = ?", disputeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dispute not found"})
	}
	if dispute.Status == models.DisputeResolved {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This dispute has already been resolved"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		dispute.Status = models.DisputeResolved
		dispute.Resolution = &req.Resolution
		dispute.ResolvedBy = &adminID
		dispute.ResolvedAt = &now
		if err := tx.Save(&dispute).Error; err != nil {
			return err
		}
		return services.LogActivity(tx, adminID, models.ActionDisputeResolved, dispute.ID, &req.Resolution)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve dispute"})
	}

	return c.JSON(dispute)
}

func GetActivityLog(c *fiber.Ctx) error {
	var entries []models.ActivityLog
	database.DB.Order("created_at desc").Limit(200).Find(&entries)
	return c.JSON(entries)
}

func GetDashboardAnalytics(c *fiber.Ctx) error {
	var totalUsers, totalProviders, totalBookings, openDisputes int64
	var totalFees int64

	database.DB.Model(&models.User{}).Count(&totalUsers)
	database.DB.Model(&models.Provider{}).Where("verified = ?", true).Count(&totalProviders)
	database.DB.Model(&models.Booking{}).Count(&totalBookings)
	database.DB.Model(&models.Dispute{}).Where("status = ?", models.DisputeOpen).Count(&openDisputes)
	database.DB.Model(&models.Booking{}).Where("status = ?", models.BookingCompleted).
		Select("COALESCE(SUM(platform_fee), 0)").Row().Scan(&totalFees)

	return c.JSON(fiber.Map{
		"total_users":        totalUsers,
		"verified_providers": totalProviders,
		"total_bookings":     totalBookings,
		"open_disputes":      openDisputes,
		"platform_fees":      totalFees,
	})
}
