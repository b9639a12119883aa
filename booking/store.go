package booking

import (
	"github.com/fliqhq/fliq-backend/models"
	"gorm.io/gorm"
)

// GormStore persists bookings through the application's database handle.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) CreateBooking(b *models.Booking) error {
	return s.DB.Create(b).Error
}
