package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/fliqhq/fliq-backend/models"
	"github.com/fliqhq/fliq-backend/pricing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	created []*models.Booking
	err     error
}

func (s *fakeStore) CreateBooking(b *models.Booking) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, b)
	return nil
}

func ptr(v int64) *int64 { return &v }

func newTestWizard(store Store) *Wizard {
	w := NewWizard(store, uuid.New(), uuid.New())
	w.Category = "bodyguard"
	w.Reference = "FLQ-TEST0001"
	w.Rates = pricing.RateTable{Hourly: ptr(5000), Daily: ptr(40000)}
	w.Schedule = Schedule{
		Date:      "2025-07-10",
		StartTime: "09:00",
		Duration:  3,
		Unit:      pricing.UnitHours,
		Location:  "Lekki Phase 1, Lagos",
	}
	return w
}

func TestWizardHappyPath(t *testing.T) {
	store := &fakeStore{}
	w := newTestWizard(store)

	require.Equal(t, StepSchedule, w.Step())
	require.NoError(t, w.Next())
	require.Equal(t, StepReview, w.Step())
	require.NoError(t, w.Next())
	require.Equal(t, StepPayment, w.Step())
	require.NoError(t, w.SelectPayment(models.PaymentMethodWallet))

	b, err := w.Submit()
	require.NoError(t, err)
	assert.Equal(t, StepSubmitted, w.Step())
	require.Len(t, store.created, 1)

	assert.Equal(t, models.BookingRequested, b.Status)
	assert.Equal(t, int64(15000), b.BaseAmount)
	assert.Equal(t, int64(750), b.PlatformFee)
	assert.Equal(t, int64(15750), b.TotalAmount)
	assert.Equal(t, int64(15000), b.ProviderPayout)
	assert.Equal(t, models.PaymentMethodWallet, b.PaymentMethod)

	wantStart := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, wantStart, b.StartTime)
	assert.Equal(t, wantStart.Add(3*time.Hour), b.EndTime)
}

func TestWizardBlocksOnEmptyLocation(t *testing.T) {
	w := newTestWizard(&fakeStore{})
	w.Schedule.Location = ""

	err := w.Next()
	require.ErrorIs(t, err, ErrScheduleIncomplete)
	assert.Equal(t, StepSchedule, w.Step())

	// Filling the location enables advancement.
	w.Schedule.Location = "Wuse 2, Abuja"
	require.NoError(t, w.Next())
	assert.Equal(t, StepReview, w.Step())
}

func TestWizardMinBookingHoursBoundary(t *testing.T) {
	w := newTestWizard(&fakeStore{})
	w.MinBookingHours = 3

	// Exactly the minimum is accepted.
	w.Schedule.Duration = 3
	require.NoError(t, w.Next())

	// One below is rejected.
	w2 := newTestWizard(&fakeStore{})
	w2.MinBookingHours = 3
	w2.Schedule.Duration = 2
	require.ErrorIs(t, w2.Next(), ErrBelowMinimum)
}

func TestWizardRejectsUnpricedUnit(t *testing.T) {
	w := newTestWizard(&fakeStore{})
	w.Rates = pricing.HourlyOnly(5000)
	w.Schedule.Unit = pricing.UnitWeeks

	require.ErrorIs(t, w.Next(), ErrUnpricedUnit)
}

func TestWizardBackForwardKeepsFields(t *testing.T) {
	w := newTestWizard(&fakeStore{})
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.SelectPayment(models.PaymentMethodCard))

	require.NoError(t, w.Back())
	require.Equal(t, StepReview, w.Step())
	require.NoError(t, w.Back())
	require.Equal(t, StepSchedule, w.Step())

	assert.Equal(t, "Lekki Phase 1, Lagos", w.Schedule.Location)
	assert.Equal(t, models.PaymentMethodCard, w.PaymentMethod)

	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	b, err := w.Submit()
	require.NoError(t, err)
	assert.Equal(t, int64(15750), b.TotalAmount)
}

func TestWizardStaysOnPaymentWhenStoreFails(t *testing.T) {
	store := &fakeStore{err: errors.New("connection reset")}
	w := newTestWizard(store)
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	_, err := w.Submit()
	require.Error(t, err)
	assert.Equal(t, StepPayment, w.Step())

	// Retry is user-initiated: clearing the fault lets the same wizard
	// submit without re-entering anything.
	store.err = nil
	b, err := w.Submit()
	require.NoError(t, err)
	assert.Equal(t, StepSubmitted, w.Step())
	assert.Equal(t, int64(15000), b.BaseAmount)
}

func TestWizardSelectPaymentValidation(t *testing.T) {
	w := newTestWizard(&fakeStore{})

	// Not selectable before the payment step.
	require.ErrorIs(t, w.SelectPayment(models.PaymentMethodWallet), ErrInvalidStep)

	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.Error(t, w.SelectPayment("crypto"))
	require.NoError(t, w.SelectPayment(models.PaymentMethodCard))
}

func TestWizardSubmitIsTerminal(t *testing.T) {
	w := newTestWizard(&fakeStore{})
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	_, err := w.Submit()
	require.NoError(t, err)

	_, err = w.Submit()
	require.ErrorIs(t, err, ErrAlreadySubmitted)
	require.ErrorIs(t, w.Next(), ErrInvalidStep)
	require.ErrorIs(t, w.Back(), ErrInvalidStep)
}

func TestWizardSubmitRevalidatesSchedule(t *testing.T) {
	store := &fakeStore{}
	w := newTestWizard(store)
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	// The schedule is still editable at the payment step; zeroing the
	// duration must not slip through to a zero-amount booking.
	w.Schedule.Duration = 0
	_, err := w.Submit()
	require.ErrorIs(t, err, ErrScheduleIncomplete)
	assert.Equal(t, StepPayment, w.Step())
	assert.Empty(t, store.created)

	// Same for switching to a unit the provider never priced.
	w.Schedule.Duration = 3
	w.Schedule.Unit = pricing.UnitWeeks
	_, err = w.Submit()
	require.ErrorIs(t, err, ErrUnpricedUnit)
	assert.Empty(t, store.created)

	// Restoring a valid schedule lets the same wizard submit.
	w.Schedule.Unit = pricing.UnitHours
	b, err := w.Submit()
	require.NoError(t, err)
	assert.Equal(t, int64(15750), b.TotalAmount)
	require.Len(t, store.created, 1)
}

func TestWizardQuoteTracksInputChanges(t *testing.T) {
	w := newTestWizard(&fakeStore{})

	assert.Equal(t, int64(15750), w.Quote().TotalAmount)

	w.Schedule.Duration = 2
	w.Schedule.Unit = pricing.UnitDays
	assert.Equal(t, int64(84000), w.Quote().TotalAmount)

	w.Schedule.Duration = 0
	assert.Equal(t, pricing.Breakdown{}, w.Quote())
}
