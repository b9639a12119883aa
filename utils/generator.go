package utils

import (
	"math/rand"
	"time"

	"github.com/fliqhq/fliq-backend/models"
	"gorm.io/gorm"
)

const referenceLength = 10
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomReference(r *rand.Rand) string {
	b := make([]byte, referenceLength)
	for i := range b {
		b[i] = letterBytes[r.Intn(len(letterBytes))]
	}
	return "FLQ-" + string(b)
}

// GenerateBookingReference produces a unique human-readable booking
// reference of the form FLQ-XXXXXXXXXX.
func GenerateBookingReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		ref := randomReference(seededRand)

		var booking models.Booking
		err := tx.Where("reference = ?", ref).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ref, nil
			}
			return "", err
		}
	}
}
