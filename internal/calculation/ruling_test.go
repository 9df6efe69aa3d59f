package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nlpay/internal/config"
	"github.com/rgehrsitz/nlpay/internal/domain"
)

func TestTaxFreeAmount(t *testing.T) {
	provider, err := config.LoadDefault()
	require.NoError(t, err)
	rates, err := provider.TaxRatesForYear(2025)
	require.NoError(t, err)

	tests := []struct {
		name    string
		income  string
		options domain.RulingOptions
		want    string
	}{
		{"disabled", "80000", domain.RulingDisabled(), "0"},
		{"plain 30 percent", "80000", domain.RulingEnabled(domain.RulingNormal), "24000"},
		{"salary above the cap", "300000", domain.RulingEnabled(domain.RulingNormal), "73800"},
		{"salary exactly at the cap", "246000", domain.RulingEnabled(domain.RulingNormal), "73800"},
		{"threshold is the floor", "60000", domain.RulingEnabled(domain.RulingNormal), "13893"},
		{"below the normal threshold", "40000", domain.RulingEnabled(domain.RulingNormal), "0"},
		{"young threshold", "40000", domain.RulingEnabled(domain.RulingYoungMaster), "4952"},
		{"research has no threshold", "10000", domain.RulingEnabled(domain.RulingResearch), "3000"},
		{"zero income", "0", domain.RulingEnabled(domain.RulingResearch), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TaxFreeAmount(dec(tt.income), tt.options, rates)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestTaxFreeAmount_Uncapped(t *testing.T) {
	provider, err := config.LoadDefault()
	require.NoError(t, err)
	rates, err := provider.TaxRatesForYear(2025)
	require.NoError(t, err)

	uncapped := *rates
	uncapped.RulingMaxSalary = nil

	got := TaxFreeAmount(dec("300000"), domain.RulingEnabled(domain.RulingNormal), &uncapped)
	assert.True(t, got.Equal(dec("90000")), "got %s", got)
}
