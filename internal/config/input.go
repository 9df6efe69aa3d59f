package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RateDocument is the on-disk layout of the rate tables. Every table is keyed by year.
type RateDocument struct {
	Years               []int `yaml:"years" json:"years"`
	CurrentYear         int   `yaml:"currentYear" json:"currentYear"`
	WorkingWeeks        int   `yaml:"workingWeeks" json:"workingWeeks"`
	WorkingDays         int   `yaml:"workingDays" json:"workingDays"`
	DefaultWorkingHours int   `yaml:"defaultWorkingHours" json:"defaultWorkingHours"`

	RulingThreshold  map[int]RulingThresholds    `yaml:"rulingThreshold" json:"rulingThreshold"`
	RulingMaxSalary  map[int]decimal.Decimal     `yaml:"rulingMaxSalary" json:"rulingMaxSalary"`
	LowWageThreshold map[int]decimal.Decimal     `yaml:"lowWageThreshold" json:"lowWageThreshold"`
	PayrollTax       map[int]domain.BracketTable `yaml:"payrollTax" json:"payrollTax"`
	SocialPercent    map[int]domain.BracketTable `yaml:"socialPercent" json:"socialPercent"`
	GeneralCredit    map[int]domain.BracketTable `yaml:"generalCredit" json:"generalCredit"`
	LabourCredit     map[int]domain.BracketTable `yaml:"labourCredit" json:"labourCredit"`
	ElderCredit      map[int]domain.BracketTable `yaml:"elderCredit" json:"elderCredit"`
}

// RulingThresholds holds the 30% ruling salary floors of one year
type RulingThresholds struct {
	Normal   decimal.Decimal `yaml:"normal" json:"normal"`
	Young    decimal.Decimal `yaml:"young" json:"young"`
	Research decimal.Decimal `yaml:"research" json:"research"`
}

// Format names a rate document encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension, defaulting to YAML
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// InputParser handles parsing of rate documents
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a rate document from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*RateDocument, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate file %s: %w", filename, err)
	}
	return ip.Parse(data, FormatFromPath(filename))
}

// Parse decodes and validates a rate document
func (ip *InputParser) Parse(data []byte, format Format) (*RateDocument, error) {
	var doc RateDocument
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := ip.ValidateDocument(&doc); err != nil {
		return nil, fmt.Errorf("rate document validation failed: %w", err)
	}
	return &doc, nil
}

// ValidateDocument checks the global constants and every year's tables
func (ip *InputParser) ValidateDocument(doc *RateDocument) error {
	if len(doc.Years) == 0 {
		return fmt.Errorf("no years provided")
	}
	if !slices.Contains(doc.Years, doc.CurrentYear) {
		return fmt.Errorf("current year %d is not among the supported years", doc.CurrentYear)
	}
	if doc.WorkingWeeks <= 0 || doc.WorkingWeeks > 53 {
		return fmt.Errorf("working weeks must be between 1 and 53")
	}
	if doc.WorkingDays <= 0 || doc.WorkingDays > 366 {
		return fmt.Errorf("working days must be between 1 and 366")
	}
	if doc.DefaultWorkingHours <= 0 || doc.DefaultWorkingHours > 168 {
		return fmt.Errorf("default working hours must be between 1 and 168")
	}

	for _, year := range doc.Years {
		if len(doc.PayrollTax[year]) == 0 {
			return fmt.Errorf("year %d: payroll tax table is required", year)
		}
		rates := doc.ratesFor(year)
		if err := rates.Validate(); err != nil {
			return fmt.Errorf("year %d: %w", year, err)
		}
	}
	return nil
}

// ratesFor assembles the immutable rates of one year. Missing thresholds
// default to zero and a missing salary cap leaves the ruling uncapped.
func (doc *RateDocument) ratesFor(year int) *domain.TaxRates {
	thresholds := doc.RulingThreshold[year]
	rates := &domain.TaxRates{
		Year:                    year,
		PayrollTax:              numbered(doc.PayrollTax[year]),
		SocialSecurity:          numbered(doc.SocialPercent[year]),
		GeneralCredit:           numbered(doc.GeneralCredit[year]),
		LabourCredit:            numbered(doc.LabourCredit[year]),
		ElderCredit:             numbered(doc.ElderCredit[year]),
		RulingThresholdNormal:   thresholds.Normal,
		RulingThresholdYoung:    thresholds.Young,
		RulingThresholdResearch: thresholds.Research,
		LowWageThreshold:        doc.LowWageThreshold[year],
	}
	if maxSalary, ok := doc.RulingMaxSalary[year]; ok {
		rates.RulingMaxSalary = &maxSalary
	}
	return rates
}

// numbered copies a table and fills missing bracket numbers with their position
func numbered(table domain.BracketTable) domain.BracketTable {
	out := make(domain.BracketTable, len(table))
	for i, b := range table {
		if b.Order == 0 {
			b.Order = i + 1
		}
		out[i] = b
	}
	return out
}
