package tui

import (
	"github.com/rgehrsitz/nlpay/internal/domain"
)

// Message types for the Bubble Tea update cycle

// CalculationCompleteMsg carries the outcome of a recalculation. Seq orders
// results since calculations finish in any order.
type CalculationCompleteMsg struct {
	Seq    uint64
	Result *domain.PaycheckResult
	Err    error
}
