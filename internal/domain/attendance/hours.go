package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputeWorkHours returns the duration between check-in and check-out in
// decimal hours, rounded half-up to 2 places. A non-positive duration is
// treated as invalid input and yields 0, never negative hours.
func ComputeWorkHours(checkIn, checkOut time.Time) decimal.Decimal {
	if !checkOut.After(checkIn) {
		return decimal.Zero
	}
	hours := decimal.NewFromFloat(checkOut.Sub(checkIn).Minutes()).
		Div(decimal.NewFromInt(60))
	return hours.Round(2)
}
