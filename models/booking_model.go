package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingRequested = "requested"
	BookingAccepted  = "accepted"
	BookingInService = "in_service"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

const (
	PaymentMethodWallet = "wallet"
	PaymentMethodCard   = "card"
)

type Booking struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Reference  string     `gorm:"size:20;not null;unique" json:"reference"`
	ClientID   uuid.UUID  `gorm:"not null" json:"client_id"`
	ProviderID uuid.UUID  `gorm:"not null" json:"provider_id"`
	ServiceID  *uuid.UUID `json:"service_id"`

	// Copied from the provider at creation time; never re-read.
	Category string `gorm:"size:30;not null" json:"category"`

	Status   string `gorm:"size:20;not null;default:'requested'" json:"status"`
	Location string `gorm:"size:255;not null" json:"location"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Duration     int64  `gorm:"not null" json:"duration"`
	DurationUnit string `gorm:"size:10;not null" json:"duration_unit"`

	// Whole naira. TotalAmount is what the client pays; the provider
	// payout is the total less the platform fee.
	BaseAmount     int64  `gorm:"not null" json:"base_amount"`
	PlatformFee    int64  `gorm:"not null" json:"platform_fee"`
	TotalAmount    int64  `gorm:"not null" json:"total_amount"`
	ProviderPayout int64  `gorm:"not null" json:"provider_payout"`
	FinalAmount    *int64 `json:"final_amount"`

	PaymentMethod string `gorm:"size:10;not null" json:"payment_method"`

	CancelReason *string `gorm:"type:text" json:"cancel_reason"`

	Client   User     `gorm:"foreignkey:ClientID" json:"client,omitempty"`
	Provider Provider `gorm:"foreignkey:ProviderID" json:"provider,omitempty"`
	Service  *Service `gorm:"foreignkey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Terminal reports whether the booking can no longer change state.
func (b *Booking) Terminal() bool {
	return b.Status == BookingCompleted || b.Status == BookingCancelled
}
