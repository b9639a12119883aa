package jobs

import (
	"log"
	"time"

	"github.com/fliqhq/fliq-backend/database"
	"github.com/fliqhq/fliq-backend/models"
	"github.com/fliqhq/fliq-backend/websocket"
)

// ExpireStaleRequests cancels requested bookings whose start time has
// already passed without the provider accepting them.
func ExpireStaleRequests() {
	log.Println("Running job: ExpireStaleRequests...")

	var staleBookings []models.Booking
	err := database.DB.
		Where("status = ? AND start_time < ?", models.BookingRequested, time.Now()).
		Find(&staleBookings).Error
	if err != nil {
		log.Printf("Error checking for stale booking requests: %v", err)
		return
	}

	for _, booking := range staleBookings {
		reason := "Request expired: the provider did not respond before the start time."
		booking.Status = models.BookingCancelled
		booking.CancelReason = &reason
		if err := database.DB.Save(&booking).Error; err != nil {
			log.Printf("Error expiring booking %s: %v", booking.Reference, err)
			continue
		}

		log.Printf("Expired stale booking request %s", booking.Reference)
		websocket.NotifyBookingUpdate(&websocket.BookingEvent{
			BookingID:  booking.ID,
			Reference:  booking.Reference,
			Status:     booking.Status,
			ClientID:   booking.ClientID,
			ProviderID: booking.ProviderID,
		})
	}
}
