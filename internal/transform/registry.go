package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_ruling", createSetRuling)
	registry.Register("remove_ruling", createRemoveRuling)
	registry.Register("set_retirement_age", createSetRetirementAge)
	registry.Register("set_social_security", createSetSocialSecurity)
	registry.Register("set_holiday_allowance", createSetHolidayAllowance)
	registry.Register("set_year", createSetYear)
	registry.Register("adjust_income", createAdjustIncome)
	registry.Register("set_hours", createSetHoursPerWeek)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set_ruling:type=young"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	name := strings.TrimSpace(parts[0])

	params := make(map[string]string)
	if len(parts) == 2 {
		paramsStr := strings.TrimSpace(parts[1])
		if paramsStr != "" {
			for _, paramPair := range strings.Split(paramsStr, ",") {
				kv := strings.SplitN(paramPair, "=", 2)
				if len(kv) != 2 {
					return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
				}
				params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
			}
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func createSetRuling(params map[string]string) (ScenarioTransform, error) {
	rulingType, err := domain.ParseRulingType(params["type"])
	if err != nil {
		return nil, err
	}
	return &SetRuling{Type: rulingType}, nil
}

func createRemoveRuling(map[string]string) (ScenarioTransform, error) {
	return &RemoveRuling{}, nil
}

func createSetRetirementAge(params map[string]string) (ScenarioTransform, error) {
	reached, err := boolParam(params, "reached", true)
	if err != nil {
		return nil, err
	}
	return &SetRetirementAge{Reached: reached}, nil
}

func createSetSocialSecurity(params map[string]string) (ScenarioTransform, error) {
	applies, err := boolParam(params, "applies", true)
	if err != nil {
		return nil, err
	}
	return &SetSocialSecurity{Applies: applies}, nil
}

func createSetHolidayAllowance(params map[string]string) (ScenarioTransform, error) {
	included, err := boolParam(params, "included", true)
	if err != nil {
		return nil, err
	}
	return &SetHolidayAllowance{Included: included}, nil
}

func createSetYear(params map[string]string) (ScenarioTransform, error) {
	yearStr, ok := params["year"]
	if !ok {
		return nil, fmt.Errorf("missing required parameter: year")
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, fmt.Errorf("invalid year value: %w", err)
	}
	return &SetYear{Year: year}, nil
}

func createAdjustIncome(params map[string]string) (ScenarioTransform, error) {
	percent, err := decimalParam(params, "percent")
	if err != nil {
		return nil, err
	}
	return &AdjustIncome{Percent: percent}, nil
}

func createSetHoursPerWeek(params map[string]string) (ScenarioTransform, error) {
	hours, err := decimalParam(params, "hours")
	if err != nil {
		return nil, err
	}
	return &SetHoursPerWeek{Hours: hours}, nil
}

func boolParam(params map[string]string, key string, fallback bool) (bool, error) {
	value, ok := params[key]
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}

func decimalParam(params map[string]string, key string) (decimal.Decimal, error) {
	value, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("missing required parameter: %s", key)
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}
