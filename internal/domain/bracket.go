package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateSelector chooses which rate column of a bracket is applied
type RateSelector int

const (
	// RatePrimary selects the bracket's main rate
	RatePrimary RateSelector = iota
	// RateSocial selects the social security rate (AOW, Anw, Wlz)
	RateSocial
	// RateOlder selects the reduced rate for workers past retirement age (Anw, Wlz)
	RateOlder
)

func (s RateSelector) String() string {
	switch s {
	case RateSocial:
		return "social"
	case RateOlder:
		return "older"
	default:
		return "rate"
	}
}

// RateKind tells how an applied bracket rate is interpreted
type RateKind int

const (
	// RateKindFixed replaces the running amount with the rate value itself
	RateKindFixed RateKind = iota
	// RateKindPercentage multiplies the income falling inside the bracket
	RateKindPercentage
)

var (
	minusOne = decimal.NewFromInt(-1)
	one      = decimal.NewFromInt(1)
)

// ClassifyRate decides whether an applied rate is a percentage or a fixed amount.
//
// The rate tables overload one field for both meanings and the published tables rely
// on it: a non-zero value strictly between -1 and 1 is a percentage, anything else is a
// fixed amount. Exactly zero is therefore a fixed amount of zero, which resets the
// running total when reached (the credit tables use this to end a phase-out).
func ClassifyRate(applied decimal.Decimal) RateKind {
	if !applied.IsZero() && applied.GreaterThan(minusOne) && applied.LessThan(one) {
		return RateKindPercentage
	}
	return RateKindFixed
}

// Bracket is one income range of a progressive schedule
type Bracket struct {
	Order      int              `yaml:"bracket" json:"bracket"`
	Min        decimal.Decimal  `yaml:"min" json:"min"`
	Max        *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate       decimal.Decimal  `yaml:"rate" json:"rate"`
	SocialRate *decimal.Decimal `yaml:"social,omitempty" json:"social,omitempty"`
	OlderRate  *decimal.Decimal `yaml:"older,omitempty" json:"older,omitempty"`
}

// IsOpen reports whether the bracket has no upper bound
func (b Bracket) IsOpen() bool {
	return b.Max == nil
}

// Width returns max - min. Open brackets have no width and report false.
func (b Bracket) Width() (decimal.Decimal, bool) {
	if b.Max == nil {
		return decimal.Zero, false
	}
	return b.Max.Sub(b.Min), true
}

// RateFor returns the rate for the selector, falling back to Rate when the
// selected column is absent.
func (b Bracket) RateFor(selector RateSelector) decimal.Decimal {
	switch selector {
	case RateSocial:
		if b.SocialRate != nil {
			return *b.SocialRate
		}
	case RateOlder:
		if b.OlderRate != nil {
			return *b.OlderRate
		}
	}
	return b.Rate
}

// BracketTable is the ordered schedule for one tax concept in one year
type BracketTable []Bracket

// First returns the first bracket in table order
func (t BracketTable) First() (Bracket, bool) {
	if len(t) == 0 {
		return Bracket{}, false
	}
	return t[0], true
}

// Validate checks ordering and bound invariants
func (t BracketTable) Validate() error {
	for i, b := range t {
		if b.Min.IsNegative() {
			return fmt.Errorf("bracket %d: min cannot be negative", i+1)
		}
		if b.Max != nil && b.Max.LessThan(b.Min) {
			return fmt.Errorf("bracket %d: max %s is below min %s", i+1, b.Max.String(), b.Min.String())
		}
		if b.IsOpen() && i != len(t)-1 {
			return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i+1)
		}
		if i > 0 && !b.Min.GreaterThan(t[i-1].Min) {
			return fmt.Errorf("bracket %d: min %s must be above previous min %s", i+1, b.Min.String(), t[i-1].Min.String())
		}
		if i > 0 && t[i-1].Max != nil && b.Min.LessThan(*t[i-1].Max) {
			return fmt.Errorf("bracket %d: overlaps previous bracket ending at %s", i+1, t[i-1].Max.String())
		}
	}
	return nil
}
