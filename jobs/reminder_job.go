package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/fliqhq/fliq-backend/database"
	"github.com/fliqhq/fliq-backend/models"
	"github.com/fliqhq/fliq-backend/notifications"
)

func SendBookingReminders() {
	log.Println("Running job: SendBookingReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingBookings []models.Booking
	err := database.DB.
		Preload("Client").
		Preload("Provider.User").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.BookingAccepted, lowerBound, upperBound).
		Find(&upcomingBookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming bookings: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending reminder for booking %s", booking.Reference)

		emailSubject := "Reminder: Your Booking Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Booking Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that booking %s is scheduled to start in one hour at %s.</p><p><b>Location:</b> %s</p>",
			booking.Reference,
			booking.StartTime.Format(time.Kitchen),
			booking.Location,
		)

		go notifications.SendEmail(booking.Client.FullName, booking.Client.Email, emailSubject, emailBody)
		go notifications.SendEmail(booking.Provider.User.FullName, booking.Provider.User.Email, emailSubject, emailBody)
	}
}
