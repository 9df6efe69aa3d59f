package calculation

import (
	"testing"

	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/stretchr/testify/assert"
)

func socialRates(rate, social, older string) *domain.TaxRates {
	return &domain.TaxRates{
		SocialSecurity: domain.BracketTable{
			{Min: dec("0"), Max: decPtr("38441"), Rate: dec(rate), SocialRate: decPtr(social), OlderRate: decPtr(older)},
		},
		LowWageThreshold: dec("1000"),
	}
}

func TestSocialCreditMultiplier(t *testing.T) {
	rates := socialRates("0.3582", "0.2765", "0.0975")

	tests := []struct {
		name           string
		retired        bool
		socialSecurity bool
		want           string
	}{
		{"regular employee", false, true, "1"},
		{"no social security", false, false, "0.0817"},
		{"no social security past retirement age", true, false, "0.0817"},
		{"past retirement age", true, true, "0.1792"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SocialCreditMultiplier(rates, tt.retired, tt.socialSecurity)
			if tt.want == "1" {
				assertAmount(t, "1", got)
				return
			}
			// (combined - removed share) / combined
			want := dec(tt.want).Div(dec("0.3582"))
			assert.True(t, got.Equal(want), "want %s, got %s", want, got)
		})
	}
}

func TestSocialCreditMultiplier_Defaults(t *testing.T) {
	empty := &domain.TaxRates{}
	assertAmount(t, "1", SocialCreditMultiplier(empty, true, false))

	zeroRate := socialRates("0", "0.2765", "0.0975")
	assertAmount(t, "1", SocialCreditMultiplier(zeroRate, true, false))

	negative := socialRates("-0.1", "0.2765", "0.0975")
	assertAmount(t, "1", SocialCreditMultiplier(negative, false, false))

	// missing social and older columns count as zero
	bare := &domain.TaxRates{SocialSecurity: domain.BracketTable{{Min: dec("0"), Rate: dec("0.3582")}}}
	assertAmount(t, "1", SocialCreditMultiplier(bare, false, false))
}

func TestBelowLowWage(t *testing.T) {
	rates := socialRates("0.3582", "0.2765", "0.0975")

	assert.True(t, belowLowWage(dec("999.99"), rates, unitMultiplier))
	assert.False(t, belowLowWage(dec("1000"), rates, unitMultiplier))

	// a multiplier of one half doubles the threshold
	assert.True(t, belowLowWage(dec("1999"), rates, dec("0.5")))
	assert.False(t, belowLowWage(dec("2000"), rates, dec("0.5")))

	assert.True(t, belowLowWage(dec("1000000"), rates, dec("0")), "zero multiplier leaves no credit")
}

func TestLabourAndGeneralCredit(t *testing.T) {
	rates := &domain.TaxRates{
		GeneralCredit: domain.BracketTable{
			{Min: dec("0"), Max: decPtr("28406"), Rate: dec("3068")},
			{Min: dec("28406"), Max: decPtr("76817"), Rate: dec("-0.06337")},
			{Min: dec("76817"), Rate: dec("0")},
		},
		LabourCredit: domain.BracketTable{
			{Min: dec("0"), Max: decPtr("12169"), Rate: dec("0.08053")},
			{Min: dec("12169"), Max: decPtr("26288"), Rate: dec("0.30030")},
			{Min: dec("26288"), Max: decPtr("43071"), Rate: dec("0.02258")},
			{Min: dec("43071"), Max: decPtr("129078"), Rate: dec("-0.0651")},
			{Min: dec("129078"), Rate: dec("0")},
		},
		ElderCredit: domain.BracketTable{
			{Min: dec("0"), Max: decPtr("44770"), Rate: dec("2035")},
			{Min: dec("44770"), Max: decPtr("58337"), Rate: dec("-0.15")},
			{Min: dec("58337"), Rate: dec("0")},
		},
		LowWageThreshold: dec("1000"),
	}

	assertAmount(t, "4496.79", labourCredit(dec("60000"), rates, unitMultiplier))
	assertAmount(t, "0", labourCredit(dec("500"), rates, unitMultiplier))
	assertAmount(t, "0", labourCredit(dec("200000"), rates, unitMultiplier))

	assertAmount(t, "1065.89", generalCredit(dec("60000"), rates, false, unitMultiplier))
	assertAmount(t, "3068", generalCredit(dec("20000"), rates, false, unitMultiplier))
	assertAmount(t, "0", generalCredit(dec("90000"), rates, false, unitMultiplier))

	// elder credit is added unscaled: 1534 (3068 * 0.5) + 2035
	assertAmount(t, "3569", generalCredit(dec("20000"), rates, true, dec("0.5")))
}
