package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput is returned for salary input that fails validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedYear is returned when no rate table exists for a year
	ErrUnsupportedYear = errors.New("unsupported tax year")
)

// InvalidInputError describes a rejected input field
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s %s. Received: %s", e.Field, e.Reason, e.Value)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// UnsupportedYearError carries the requested year and the years that are available
type UnsupportedYearError struct {
	Year      int
	Supported []int
}

func (e *UnsupportedYearError) Error() string {
	years := make([]string, len(e.Supported))
	for i, y := range e.Supported {
		years[i] = strconv.Itoa(y)
	}
	return fmt.Sprintf("tax year %d is not supported. Supported years: %s", e.Year, strings.Join(years, ", "))
}

func (e *UnsupportedYearError) Unwrap() error { return ErrUnsupportedYear }
