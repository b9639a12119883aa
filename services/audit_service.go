package services

import (
	"log"

	"github.com/fliqhq/fliq-backend/database"
	"github.com/fliqhq/fliq-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogActivity records an admin action against its target. Writing the
// entry inside the caller's transaction keeps the action and its audit
// trail atomic.
func LogActivity(tx *gorm.DB, actorID uuid.UUID, action string, targetID uuid.UUID, detail *string) error {
	entry := models.ActivityLog{
		ActorID:  actorID,
		Action:   action,
		TargetID: targetID,
		Detail:   detail,
	}
	return tx.Create(&entry).Error
}

// LogActivityAsync is the fire-and-forget variant for actions whose
// audit entry is informational rather than part of the write itself.
func LogActivityAsync(actorID uuid.UUID, action string, targetID uuid.UUID, detail *string) {
	go func() {
		if err := LogActivity(database.DB, actorID, action, targetID, detail); err != nil {
			log.Printf("🔥 Failed to write activity log entry %s: %v", action, err)
		}
	}()
}
