package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/fliqhq/fliq-backend/models"
	"github.com/fliqhq/fliq-backend/pricing"
	"github.com/google/uuid"
)

// Step is the wizard's position in the four-stage booking flow.
type Step string

const (
	StepSchedule  Step = "collecting_schedule"
	StepReview    Step = "reviewing_summary"
	StepPayment   Step = "selecting_payment"
	StepSubmitted Step = "submitted"
)

var (
	ErrScheduleIncomplete = errors.New("date, start time, duration and location are all required")
	ErrBelowMinimum       = errors.New("duration is below the service's minimum booking hours")
	ErrUnpricedUnit       = errors.New("no rate is set for the selected duration unit")
	ErrInvalidStep        = errors.New("action not allowed in the current step")
	ErrAlreadySubmitted   = errors.New("booking has already been submitted")
)

// Store persists the finished booking. The wizard only ever inserts.
type Store interface {
	CreateBooking(b *models.Booking) error
}

// Schedule is the client's date/time/duration/location input.
type Schedule struct {
	Date      string // 2006-01-02
	StartTime string // 15:04
	Duration  int64
	Unit      pricing.Unit
	Location  string
}

// Wizard walks a client through schedule → review → payment → submitted.
// All fields survive back/forward navigation; nothing is cleared until
// the booking is persisted.
type Wizard struct {
	ClientID   uuid.UUID
	ProviderID uuid.UUID
	ServiceID  *uuid.UUID
	Category   string
	Reference  string

	Rates           pricing.RateTable
	MinBookingHours int

	Schedule      Schedule
	PaymentMethod string

	step  Step
	store Store
}

func NewWizard(store Store, clientID, providerID uuid.UUID) *Wizard {
	return &Wizard{
		ClientID:      clientID,
		ProviderID:    providerID,
		PaymentMethod: models.PaymentMethodCard,
		step:          StepSchedule,
		store:         store,
	}
}

func (w *Wizard) Step() Step { return w.step }

// Quote re-derives the cost breakdown from the current inputs. It is
// cheap and pure, so callers invoke it on every input change.
func (w *Wizard) Quote() pricing.Breakdown {
	return pricing.Quote(w.Schedule.Duration, w.Schedule.Unit, w.Rates)
}

// Next advances one step forward. Leaving the schedule step is guarded by
// required-field presence and the service's minimum duration.
func (w *Wizard) Next() error {
	switch w.step {
	case StepSchedule:
		if err := w.validateSchedule(); err != nil {
			return err
		}
		w.step = StepReview
	case StepReview:
		w.step = StepPayment
	default:
		return ErrInvalidStep
	}
	return nil
}

// Back returns to the previous step without losing any input.
func (w *Wizard) Back() error {
	switch w.step {
	case StepReview:
		w.step = StepSchedule
	case StepPayment:
		w.step = StepReview
	default:
		return ErrInvalidStep
	}
	return nil
}

// SelectPayment records the payment method. It does not move the wizard.
func (w *Wizard) SelectPayment(method string) error {
	if w.step != StepPayment {
		return ErrInvalidStep
	}
	if method != models.PaymentMethodWallet && method != models.PaymentMethodCard {
		return fmt.Errorf("unknown payment method %q", method)
	}
	w.PaymentMethod = method
	return nil
}

// Submit persists the booking in the requested state. On a store failure
// the wizard stays on the payment step so the caller can retry.
func (w *Wizard) Submit() (*models.Booking, error) {
	if w.step == StepSubmitted {
		return nil, ErrAlreadySubmitted
	}
	if w.step != StepPayment {
		return nil, ErrInvalidStep
	}
	// Schedule fields stay mutable across steps, so the guard that
	// gated leaving the schedule step runs again before anything is
	// persisted.
	if err := w.validateSchedule(); err != nil {
		return nil, err
	}

	start, err := w.startTimestamp()
	if err != nil {
		return nil, err
	}
	quote := w.Quote()

	b := &models.Booking{
		Reference:      w.Reference,
		ClientID:       w.ClientID,
		ProviderID:     w.ProviderID,
		ServiceID:      w.ServiceID,
		Category:       w.Category,
		Status:         models.BookingRequested,
		Location:       w.Schedule.Location,
		StartTime:      start,
		EndTime:        pricing.EndTime(start, w.Schedule.Duration, w.Schedule.Unit),
		Duration:       w.Schedule.Duration,
		DurationUnit:   string(w.Schedule.Unit),
		BaseAmount:     quote.BaseAmount,
		PlatformFee:    quote.PlatformFee,
		TotalAmount:    quote.TotalAmount,
		ProviderPayout: quote.TotalAmount - quote.PlatformFee,
		PaymentMethod:  w.PaymentMethod,
	}
	if err := w.store.CreateBooking(b); err != nil {
		return nil, err
	}
	w.step = StepSubmitted
	return b, nil
}

func (w *Wizard) validateSchedule() error {
	s := w.Schedule
	if s.Date == "" || s.StartTime == "" || s.Location == "" || s.Duration <= 0 {
		return ErrScheduleIncomplete
	}
	if s.Unit == pricing.UnitHours && w.MinBookingHours > 0 && s.Duration < int64(w.MinBookingHours) {
		return ErrBelowMinimum
	}
	if w.Rates.Rate(s.Unit) == 0 {
		return ErrUnpricedUnit
	}
	return nil
}

func (w *Wizard) startTimestamp() (time.Time, error) {
	return time.Parse("2006-01-02 15:04", w.Schedule.Date+" "+w.Schedule.StartTime)
}
