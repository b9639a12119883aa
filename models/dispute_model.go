package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DisputeOpen     = "open"
	DisputeResolved = "resolved"
)

type Dispute struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"not null" json:"booking_id"`
	RaisedBy  uuid.UUID `gorm:"not null" json:"raised_by"`
	Status    string    `gorm:"size:20;not null;default:'open'" json:"status"`
	Reason    string    `gorm:"type:text;not null" json:"reason"`

	Resolution *string    `gorm:"type:text" json:"resolution"`
	ResolvedBy *uuid.UUID `json:"resolved_by"`
	ResolvedAt *time.Time `json:"resolved_at"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
