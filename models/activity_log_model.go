package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionVerificationApproved = "verification_approved"
	ActionVerificationRejected = "verification_rejected"
	ActionDisputeResolved      = "dispute_resolved"
	ActionUserSuspended        = "user_suspended"
	ActionUserReactivated      = "user_reactivated"
)

type ActivityLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ActorID  uuid.UUID `gorm:"not null" json:"actor_id"`
	Action   string    `gorm:"size:50;not null" json:"action"`
	TargetID uuid.UUID `gorm:"not null" json:"target_id"`
	Detail   *string   `gorm:"type:text" json:"detail"`

	CreatedAt time.Time `json:"created_at"`
}
