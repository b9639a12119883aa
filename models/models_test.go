package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProviderVerificationState(t *testing.T) {
	p := &Provider{}
	assert.Equal(t, VerificationIncomplete, p.VerificationState())

	p.Documents = []VerificationDocument{{Kind: "id_card", FileURL: "https://cdn.example/doc.png"}}
	assert.Equal(t, VerificationPending, p.VerificationState())

	reason := "ID card is illegible"
	p.RejectionReason = &reason
	assert.Equal(t, VerificationRejected, p.VerificationState())

	// Resubmission clears the review fields and returns to pending.
	p.RejectionReason = nil
	p.ReviewedAt = nil
	p.ReviewedBy = nil
	assert.Equal(t, VerificationPending, p.VerificationState())

	now := time.Now()
	reviewer := uuid.New()
	p.Verified = true
	p.ReviewedAt = &now
	p.ReviewedBy = &reviewer
	assert.Equal(t, VerificationVerified, p.VerificationState())
}

func TestBookingTerminal(t *testing.T) {
	for _, status := range []string{BookingRequested, BookingAccepted, BookingInService} {
		b := &Booking{Status: status}
		assert.False(t, b.Terminal(), status)
	}
	for _, status := range []string{BookingCompleted, BookingCancelled} {
		b := &Booking{Status: status}
		assert.True(t, b.Terminal(), status)
	}
}

func TestServiceHasPrice(t *testing.T) {
	price := int64(40000)

	assert.False(t, (&Service{}).HasPrice())
	assert.True(t, (&Service{PriceHour: &price}).HasPrice())
	assert.True(t, (&Service{PriceDay: &price}).HasPrice())
	assert.True(t, (&Service{PriceWeek: &price}).HasPrice())
}
