package calculation

import "github.com/rgehrsitz/nlpay/internal/domain"

// RateProvider supplies parsed rate tables and the working-time constants.
// Implementations must be safe for concurrent readers.
type RateProvider interface {
	// TaxRatesForYear returns a *domain.UnsupportedYearError for unknown years
	TaxRatesForYear(year int) (*domain.TaxRates, error)
	WorkingWeeks() int
	WorkingDays() int
	DefaultWorkingHours() int
	SupportedYears() []int
	CurrentYear() int
	IsYearSupported(year int) bool
}
