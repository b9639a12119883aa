package models

import (
	"time"

	"github.com/google/uuid"
)

type PayoutAccount struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProviderID uuid.UUID `gorm:"not null;unique" json:"provider_id"`

	BankCode      string `gorm:"size:10;not null" json:"bank_code"`
	BankName      string `gorm:"size:100;not null" json:"bank_name"`
	AccountNumber string `gorm:"size:20;not null" json:"account_number"`
	AccountName   string `gorm:"size:255;not null" json:"account_name"`

	SubaccountCode   *string `gorm:"size:50;unique" json:"subaccount_code"`
	PercentageCharge float64 `gorm:"not null;default:5" json:"percentage_charge"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
