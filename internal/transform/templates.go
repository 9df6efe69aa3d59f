package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates registers the common paycheck variations plus one
// year_<year> template per supported tax year.
func CreateBuiltInTemplates(years []int) *TemplateRegistry {
	registry := NewTemplateRegistry()

	// 30% ruling
	registry.Register(Template{
		Name:        "ruling",
		Description: "Apply the normal 30% ruling",
		Transforms:  []ScenarioTransform{&SetRuling{Type: domain.RulingNormal}},
	})
	registry.Register(Template{
		Name:        "ruling_young",
		Description: "Apply the 30% ruling for young master's graduates",
		Transforms:  []ScenarioTransform{&SetRuling{Type: domain.RulingYoungMaster}},
	})
	registry.Register(Template{
		Name:        "ruling_research",
		Description: "Apply the 30% ruling for scientific researchers",
		Transforms:  []ScenarioTransform{&SetRuling{Type: domain.RulingResearch}},
	})
	registry.Register(Template{
		Name:        "no_ruling",
		Description: "Calculate without the 30% ruling",
		Transforms:  []ScenarioTransform{&RemoveRuling{}},
	})

	// Personal situation
	registry.Register(Template{
		Name:        "retired",
		Description: "Employee has reached retirement age",
		Transforms:  []ScenarioTransform{&SetRetirementAge{Reached: true}},
	})
	registry.Register(Template{
		Name:        "no_social_security",
		Description: "No social security contributions",
		Transforms:  []ScenarioTransform{&SetSocialSecurity{Applies: false}},
	})
	registry.Register(Template{
		Name:        "holiday_allowance",
		Description: "Income includes the 8% holiday allowance",
		Transforms:  []ScenarioTransform{&SetHolidayAllowance{Included: true}},
	})

	// Income changes
	registry.Register(Template{
		Name:        "raise_5pct",
		Description: "Income raised by 5%",
		Transforms:  []ScenarioTransform{&AdjustIncome{Percent: decimal.NewFromInt(5)}},
	})
	registry.Register(Template{
		Name:        "raise_10pct",
		Description: "Income raised by 10%",
		Transforms:  []ScenarioTransform{&AdjustIncome{Percent: decimal.NewFromInt(10)}},
	})

	// Combination
	registry.Register(Template{
		Name:        "expat_raise_10pct",
		Description: "Normal 30% ruling plus a 10% raise",
		Transforms: []ScenarioTransform{
			&SetRuling{Type: domain.RulingNormal},
			&AdjustIncome{Percent: decimal.NewFromInt(10)},
		},
	})

	for _, year := range years {
		registry.Register(Template{
			Name:        fmt.Sprintf("year_%d", year),
			Description: fmt.Sprintf("Use the %d tax tables", year),
			Transforms:  []ScenarioTransform{&SetYear{Year: year}},
		})
	}

	return registry
}

// ApplyTemplate applies a template to a base scenario
func ApplyTemplate(base *domain.Scenario, template Template) (*domain.Scenario, error) {
	if len(template.Transforms) == 0 {
		return base.DeepCopy(), nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")
	for _, name := range registry.List() {
		t := registry.templates[name]
		sb.WriteString(fmt.Sprintf("  %-20s %s\n", t.Name, t.Description))
	}
	return sb.String()
}
