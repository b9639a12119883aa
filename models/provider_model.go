package models

import (
	"time"

	"github.com/google/uuid"
)

// Verification states derived from the review fields below.
const (
	VerificationIncomplete = "incomplete"
	VerificationPending    = "pending"
	VerificationVerified   = "verified"
	VerificationRejected   = "rejected"
)

type Provider struct {
	UserID     uuid.UUID `gorm:"primary_key" json:"user_id"`
	Category   string    `gorm:"size:30;not null" json:"category"`
	City       string    `gorm:"size:100;not null" json:"city"`
	Headline   *string   `gorm:"size:255" json:"headline"`
	Bio        *string   `gorm:"type:text" json:"bio"`
	HourlyRate int64     `gorm:"not null" json:"hourly_rate"`

	Verified        bool       `gorm:"default:false" json:"verified"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
	ReviewedBy      *uuid.UUID `json:"reviewed_by"`
	RejectionReason *string    `gorm:"type:text" json:"rejection_reason"`

	AvgRating     float32 `gorm:"default:0" json:"avg_rating"`
	PayoutBalance int64   `gorm:"not null;default:0" json:"-"`

	Documents []VerificationDocument `gorm:"foreignkey:ProviderID" json:"documents,omitempty"`
	Services  []Service              `gorm:"foreignkey:ProviderID" json:"services,omitempty"`
	User      User                   `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// VerificationState collapses the review fields into one tag so callers
// never have to chain null checks.
func (p *Provider) VerificationState() string {
	switch {
	case p.Verified:
		return VerificationVerified
	case p.RejectionReason != nil:
		return VerificationRejected
	case len(p.Documents) > 0:
		return VerificationPending
	default:
		return VerificationIncomplete
	}
}

type VerificationDocument struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProviderID uuid.UUID `gorm:"not null" json:"-"`
	Kind       string    `gorm:"size:50;not null" json:"kind"`
	FileURL    string    `gorm:"size:255;not null" json:"file_url"`

	CreatedAt time.Time `json:"submitted_at"`
}
