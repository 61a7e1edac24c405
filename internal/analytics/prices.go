package analytics

import (
	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/logger"
)

// DefaultServicePrice is used when a service name has no table entry and the
// booking carries no agreed price. Known fragility inherited from the legacy
// data: renamed or newly created services silently get this value.
const DefaultServicePrice = 50.00

// PriceTable resolves a completed booking to a revenue amount. Bookings do
// not historically carry a persisted price, only a service name.
type PriceTable map[string]float64

// DefaultPriceTable returns the legacy service-name price table.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		"Phone Repair":        99.00,
		"Hair Styling":        60.00,
		"Wedding Photography": 1500.00,
		"Lawn Mowing":         45.00,
		"Computer Repair":     120.00,
		"Plumbing Service":    85.00,
		"House Cleaning":      75.00,
		"Pet Grooming":        50.00,
	}
}

// Resolve returns the revenue amount for a booking. An agreed price captured
// at acceptance time wins; otherwise the name table applies, and unknown
// names fall back to DefaultServicePrice. Every fallback hit is logged for
// migration auditing.
func (t PriceTable) Resolve(b domain.Booking) float64 {
	if b.AgreedPrice > 0 {
		return b.AgreedPrice
	}
	if price, ok := t[b.ServiceName]; ok {
		return price
	}
	logger.Warn("Service price fallback", "booking_id", b.ID, "service_name", b.ServiceName, "fallback", DefaultServicePrice)
	return DefaultServicePrice
}
