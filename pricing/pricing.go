package pricing

import "time"

// Unit is the duration unit a client books in.
type Unit string

const (
	UnitHours Unit = "hours"
	UnitDays  Unit = "days"
	UnitWeeks Unit = "weeks"
)

// FeeBasisPoints is the platform surcharge: 5% of the base amount.
const FeeBasisPoints int64 = 500

// RateTable holds the per-unit prices of a service in whole naira.
// A nil entry means the service is not bookable in that unit.
type RateTable struct {
	Hourly *int64
	Daily  *int64
	Weekly *int64
}

// HourlyOnly builds the rate table for a provider without a service
// listing, who is bookable by the hour at their base rate.
func HourlyOnly(rate int64) RateTable {
	return RateTable{Hourly: &rate}
}

// Rate returns the price for the given unit, or 0 if none is set.
func (r RateTable) Rate(unit Unit) int64 {
	var rate *int64
	switch unit {
	case UnitHours:
		rate = r.Hourly
	case UnitDays:
		rate = r.Daily
	case UnitWeeks:
		rate = r.Weekly
	}
	if rate == nil {
		return 0
	}
	return *rate
}

// Units lists the units a rate exists for. Callers use this to restrict
// what is selectable, since Quote returns zeros for an unpriced unit.
func (r RateTable) Units() []Unit {
	var units []Unit
	if r.Hourly != nil {
		units = append(units, UnitHours)
	}
	if r.Daily != nil {
		units = append(units, UnitDays)
	}
	if r.Weekly != nil {
		units = append(units, UnitWeeks)
	}
	return units
}

// Breakdown is a booking cost estimate in whole naira.
type Breakdown struct {
	BaseAmount  int64 `json:"base_amount"`
	PlatformFee int64 `json:"platform_fee"`
	TotalAmount int64 `json:"total_amount"`
}

// Quote computes the cost of booking duration units at the table's rate.
//
// The platform fee is rounded half-up on whole naira. Integer arithmetic
// keeps tie cases exact regardless of the size of the base amount.
// A non-positive duration or a missing rate for the unit yields a zero
// breakdown; the caller guards submission against both.
func Quote(duration int64, unit Unit, rates RateTable) Breakdown {
	if duration <= 0 {
		return Breakdown{}
	}
	rate := rates.Rate(unit)
	if rate == 0 {
		return Breakdown{}
	}

	base := rate * duration
	fee := (base*FeeBasisPoints + 5_000) / 10_000
	return Breakdown{
		BaseAmount:  base,
		PlatformFee: fee,
		TotalAmount: base + fee,
	}
}

// EndTime returns the absolute end of a booking starting at start and
// running for duration units.
func EndTime(start time.Time, duration int64, unit Unit) time.Time {
	switch unit {
	case UnitDays:
		return start.AddDate(0, 0, int(duration))
	case UnitWeeks:
		return start.AddDate(0, 0, int(duration)*7)
	default:
		return start.Add(time.Duration(duration) * time.Hour)
	}
}
