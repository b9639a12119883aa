package handlers

import (
	"log"

	"github.com/fliqhq/fliq-backend/database"
	"github.com/fliqhq/fliq-backend/models"
	"github.com/fliqhq/fliq-backend/payments"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// The payment endpoints proxy the gateway and reshape every response
// into a {status, data|message} envelope; callers check the status
// field rather than relying on the HTTP code alone.

func ListBanks(c *fiber.Ctx) error {
	banks, err := payments.ListBanks()
	if err != nil {
		log.Printf("🔥 Failed to fetch bank list: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "Failed to fetch bank list"})
	}
	return c.JSON(fiber.Map{"status": true, "data": banks})
}

type ResolveAccountRequest struct {
	AccountNumber string `json:"account_number" validate:"required,len=10,numeric"`
	BankCode      string `json:"bank_code" validate:"required"`
}

func ResolveAccount(c *fiber.Ctx) error {
	var req ResolveAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": err.Error()})
	}

	account, err := payments.ResolveAccount(req.AccountNumber, req.BankCode)
	if err != nil {
		log.Printf("🔥 Failed to resolve account: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "Could not resolve account details"})
	}
	return c.JSON(fiber.Map{"status": true, "data": account})
}

type PayoutAccountRequest struct {
	BankCode      string `json:"bank_code" validate:"required"`
	BankName      string `json:"bank_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required,len=10,numeric"`
}

// UpsertPayoutAccount resolves the account, provisions (or updates) the
// gateway subaccount, and persists the result for the provider.
func UpsertPayoutAccount(c *fiber.Ctx) error {
	providerID := currentUserID(c)

	var req PayoutAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": false, "message": err.Error()})
	}

	var provider models.Provider
	if err := database.DB.Preload("User").Where("user_id = ?", providerID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "Provider profile not found"})
	}

	resolved, err := payments.ResolveAccount(req.AccountNumber, req.BankCode)
	if err != nil {
		log.Printf("🔥 Failed to resolve account for provider %s: %v", providerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "Could not resolve account details"})
	}

	subReq := payments.SubaccountRequest{
		BusinessName:        provider.User.FullName,
		SettlementBank:      req.BankCode,
		AccountNumber:       req.AccountNumber,
		PercentageCharge:    5,
		PrimaryContactEmail: provider.User.Email,
	}

	var account models.PayoutAccount
	err = database.DB.Where("provider_id = ?", providerID).First(&account).Error
	switch {
	case err == nil && account.SubaccountCode != nil:
		if _, err := payments.UpdateSubaccount(*account.SubaccountCode, subReq); err != nil {
			log.Printf("🔥 Failed to update subaccount for provider %s: %v", providerID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "Failed to update payout account"})
		}
	case err == nil || err == gorm.ErrRecordNotFound:
		sub, err := payments.CreateSubaccount(subReq)
		if err != nil {
			log.Printf("🔥 Failed to create subaccount for provider %s: %v", providerID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "Failed to create payout account"})
		}
		account.SubaccountCode = &sub.SubaccountCode
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "Database error"})
	}

	account.ProviderID = providerID
	account.BankCode = req.BankCode
	account.BankName = req.BankName
	account.AccountNumber = req.AccountNumber
	account.AccountName = resolved.AccountName
	account.PercentageCharge = 5

	if err := database.DB.Save(&account).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": false, "message": "Failed to save payout account"})
	}

	return c.JSON(fiber.Map{"status": true, "data": account})
}

func GetMyPayoutAccount(c *fiber.Ctx) error {
	providerID := currentUserID(c)

	var account models.PayoutAccount
	if err := database.DB.Where("provider_id = ?", providerID).First(&account).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": false, "message": "No payout account on file"})
	}
	return c.JSON(fiber.Map{"status": true, "data": account})
}
