package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func TestQuoteHourly(t *testing.T) {
	// ₦5,000/hour for 3 hours.
	b := Quote(3, UnitHours, HourlyOnly(5000))
	assert.Equal(t, int64(15000), b.BaseAmount)
	assert.Equal(t, int64(750), b.PlatformFee)
	assert.Equal(t, int64(15750), b.TotalAmount)
}

func TestQuoteDaily(t *testing.T) {
	// ₦40,000/day for 2 days.
	b := Quote(2, UnitDays, RateTable{Daily: ptr(40000)})
	assert.Equal(t, int64(80000), b.BaseAmount)
	assert.Equal(t, int64(4000), b.PlatformFee)
	assert.Equal(t, int64(84000), b.TotalAmount)
}

func TestQuoteTotalIsBasePlusFee(t *testing.T) {
	rates := RateTable{Hourly: ptr(3500), Daily: ptr(27000), Weekly: ptr(150000)}
	for _, unit := range rates.Units() {
		for d := int64(1); d <= 50; d++ {
			b := Quote(d, unit, rates)
			require.Equal(t, b.BaseAmount+b.PlatformFee, b.TotalAmount)
			require.Equal(t, rates.Rate(unit)*d, b.BaseAmount)
		}
	}
}

func TestQuoteRoundsFeeHalfUp(t *testing.T) {
	// 5% of 1010 is 50.5: half-up rounds to 51.
	b := Quote(1, UnitHours, HourlyOnly(1010))
	assert.Equal(t, int64(51), b.PlatformFee)
	assert.Equal(t, int64(1061), b.TotalAmount)

	// 5% of 1009 is 50.45: rounds down to 50.
	b = Quote(1, UnitHours, HourlyOnly(1009))
	assert.Equal(t, int64(50), b.PlatformFee)
}

func TestQuoteIsDeterministic(t *testing.T) {
	rates := RateTable{Daily: ptr(40000)}
	first := Quote(4, UnitDays, rates)
	second := Quote(4, UnitDays, rates)
	assert.Equal(t, first, second)
}

func TestQuoteMissingRateReturnsZeros(t *testing.T) {
	// Only an hourly rate exists but the caller picked days.
	b := Quote(2, UnitDays, HourlyOnly(5000))
	assert.Equal(t, Breakdown{}, b)
}

func TestQuoteNonPositiveDuration(t *testing.T) {
	assert.Equal(t, Breakdown{}, Quote(0, UnitHours, HourlyOnly(5000)))
	assert.Equal(t, Breakdown{}, Quote(-3, UnitHours, HourlyOnly(5000)))
}

func TestRateTableUnits(t *testing.T) {
	rates := RateTable{Hourly: ptr(2000), Weekly: ptr(90000)}
	assert.Equal(t, []Unit{UnitHours, UnitWeeks}, rates.Units())
	assert.Empty(t, RateTable{}.Units())
}

func TestEndTime(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, start.Add(5*time.Hour), EndTime(start, 5, UnitHours))
	assert.Equal(t, time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC), EndTime(start, 2, UnitDays))
	assert.Equal(t, time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC), EndTime(start, 2, UnitWeeks))
}
