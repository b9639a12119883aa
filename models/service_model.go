package models

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProviderID  uuid.UUID `gorm:"not null" json:"provider_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`

	// Prices in whole naira. An active service must have at least one set.
	PriceHour *int64 `json:"price_hour"`
	PriceDay  *int64 `json:"price_day"`
	PriceWeek *int64 `json:"price_week"`

	MinBookingHours int  `gorm:"not null;default:1" json:"min_booking_hours"`
	IsActive        bool `gorm:"default:true" json:"is_active"`

	Extras   []ServiceExtra `gorm:"foreignkey:ServiceID" json:"extras,omitempty"`
	Provider Provider       `gorm:"foreignkey:ProviderID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPrice reports whether any of the three tiers is set.
func (s *Service) HasPrice() bool {
	return s.PriceHour != nil || s.PriceDay != nil || s.PriceWeek != nil
}

type ServiceExtra struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ServiceID uuid.UUID `gorm:"not null" json:"-"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Price     int64     `gorm:"not null" json:"price"`
}
