package config

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/rgehrsitz/nlpay/internal/domain"
)

//go:embed data/rates.yaml
var defaultRates []byte

// Provider serves the rates of a validated document. All years are built up
// front, so lookups are read-only and safe from any goroutine.
type Provider struct {
	years               []int
	currentYear         int
	workingWeeks        int
	workingDays         int
	defaultWorkingHours int
	rates               map[int]*domain.TaxRates
}

// NewProvider validates doc and builds the rates of every supported year
func NewProvider(doc *RateDocument) (*Provider, error) {
	if err := NewInputParser().ValidateDocument(doc); err != nil {
		return nil, err
	}

	p := &Provider{
		years:               slices.Clone(doc.Years),
		currentYear:         doc.CurrentYear,
		workingWeeks:        doc.WorkingWeeks,
		workingDays:         doc.WorkingDays,
		defaultWorkingHours: doc.DefaultWorkingHours,
		rates:               make(map[int]*domain.TaxRates, len(doc.Years)),
	}
	for _, year := range doc.Years {
		p.rates[year] = doc.ratesFor(year)
	}
	return p, nil
}

// LoadProvider reads a YAML or JSON rate file
func LoadProvider(path string) (*Provider, error) {
	doc, err := NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return NewProvider(doc)
}

// LoadDefault returns a provider over the rates bundled with the binary
func LoadDefault() (*Provider, error) {
	doc, err := NewInputParser().Parse(defaultRates, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("bundled rates: %w", err)
	}
	return NewProvider(doc)
}

// MustLoadDefault is LoadDefault for callers that treat the bundled data as a build invariant
func MustLoadDefault() *Provider {
	p, err := LoadDefault()
	if err != nil {
		panic(err)
	}
	return p
}

// TaxRatesForYear returns the rates of year or a *domain.UnsupportedYearError
func (p *Provider) TaxRatesForYear(year int) (*domain.TaxRates, error) {
	rates, ok := p.rates[year]
	if !ok {
		return nil, &domain.UnsupportedYearError{Year: year, Supported: p.SupportedYears()}
	}
	return rates, nil
}

// SupportedYears returns a copy of the years in the document
func (p *Provider) SupportedYears() []int { return slices.Clone(p.years) }

// CurrentYear is the document's default tax year
func (p *Provider) CurrentYear() int { return p.currentYear }

// WorkingWeeks is the number of paid weeks in a year
func (p *Provider) WorkingWeeks() int { return p.workingWeeks }

// WorkingDays is the number of paid days in a year
func (p *Provider) WorkingDays() int { return p.workingDays }

// DefaultWorkingHours is the contract week assumed when an input gives none
func (p *Provider) DefaultWorkingHours() int { return p.defaultWorkingHours }

// IsYearSupported reports whether rates exist for year
func (p *Provider) IsYearSupported(year int) bool {
	_, ok := p.rates[year]
	return ok
}
