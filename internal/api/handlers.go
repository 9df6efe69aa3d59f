package api

import (
	"errors"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/nlpay/internal/breakeven"
	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/rgehrsitz/nlpay/internal/output"
	"github.com/shopspring/decimal"
)

// PaycheckRequest is the body of POST /api/v1/paycheck.
// Income accepts a JSON number or a decimal string. HoursPerWeek defaults
// to the contract week of the loaded rates.
type PaycheckRequest struct {
	Income           decimal.Decimal  `json:"income"`
	Period           string           `json:"period"`
	Year             int              `json:"year"`
	Ruling           string           `json:"ruling"` // "", "normal", "young" or "research"
	HolidayAllowance bool             `json:"holidayAllowance"`
	SocialSecurity   *bool            `json:"socialSecurity"`
	Retired          bool             `json:"retired"`
	HoursPerWeek     *decimal.Decimal `json:"hoursPerWeek"`
}

// GrossRequest is the body of POST /api/v1/gross. TargetNet is expressed
// in Period; the income field is ignored.
type GrossRequest struct {
	PaycheckRequest
	TargetNet decimal.Decimal `json:"targetNet"`
}

// YearsResponse lists the tax years the server can calculate
type YearsResponse struct {
	Years       []int `json:"years"`
	CurrentYear int   `json:"currentYear"`
}

func (s *Server) handlePaycheck(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())

	var req PaycheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, CodeInvalidJSON, "invalid request body", reqID)
		return
	}

	input, period, ruling, err := s.toCalculation(req)
	if err != nil {
		s.writeError(w, err, reqID)
		return
	}

	year := req.Year
	if year == 0 {
		year = s.Engine.CurrentYear()
	}

	result, err := s.Engine.Calculate(input, period, year, ruling)
	if err != nil {
		s.writeError(w, err, reqID)
		return
	}

	Success(w, output.NewReport(result), reqID)
}

func (s *Server) handleGross(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())

	var req GrossRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, CodeInvalidJSON, "invalid request body", reqID)
		return
	}
	req.Income = decimal.Zero

	input, period, ruling, err := s.toCalculation(req.PaycheckRequest)
	if err != nil {
		s.writeError(w, err, reqID)
		return
	}

	year := req.Year
	if year == 0 {
		year = s.Engine.CurrentYear()
	}

	base := &domain.Scenario{Name: "base", Input: input, Period: period, Year: year, Ruling: ruling}
	result, err := breakeven.NewDefaultSolver(s.Engine).Solve(r.Context(), breakeven.SolveRequest{Base: base, TargetNet: req.TargetNet})
	if err != nil {
		s.writeError(w, err, reqID)
		return
	}

	Success(w, result, reqID)
}

func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	Success(w, YearsResponse{
		Years:       s.Engine.SupportedYears(),
		CurrentYear: s.Engine.CurrentYear(),
	}, GetRequestID(r.Context()))
}

func (s *Server) toCalculation(req PaycheckRequest) (domain.SalaryInput, domain.Period, domain.RulingOptions, error) {
	period := domain.PeriodYear
	if strings.TrimSpace(req.Period) != "" {
		p, err := domain.ParsePeriod(req.Period)
		if err != nil {
			return domain.SalaryInput{}, period, domain.RulingOptions{}, &domain.InvalidInputError{Field: "period", Value: req.Period, Reason: err.Error()}
		}
		period = p
	}

	ruling := domain.RulingDisabled()
	if strings.TrimSpace(req.Ruling) != "" {
		t, err := domain.ParseRulingType(req.Ruling)
		if err != nil {
			return domain.SalaryInput{}, period, ruling, &domain.InvalidInputError{Field: "ruling", Value: req.Ruling, Reason: err.Error()}
		}
		ruling = domain.RulingEnabled(t)
	}

	opts := []domain.InputOption{
		domain.WithHolidayAllowance(req.HolidayAllowance),
		domain.WithRetirementAge(req.Retired),
	}
	if req.SocialSecurity != nil {
		opts = append(opts, domain.WithSocialSecurity(*req.SocialSecurity))
	}
	if req.HoursPerWeek != nil {
		opts = append(opts, domain.WithHoursPerWeek(*req.HoursPerWeek))
	}

	input, err := s.Engine.NewSalaryInput(req.Income, opts...)
	return input, period, ruling, err
}

func (s *Server) writeError(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		Fail(w, http.StatusBadRequest, CodeInvalidInput, err.Error(), reqID)
	case errors.Is(err, domain.ErrUnsupportedYear):
		Fail(w, http.StatusNotFound, CodeUnsupportedYear, err.Error(), reqID)
	case errors.As(err, new(*breakeven.BreakEvenError)):
		Fail(w, http.StatusUnprocessableEntity, CodeUnreachable, err.Error(), reqID)
	default:
		s.Log.WithError(err).WithField("requestId", reqID).Error("paycheck calculation failed")
		Fail(w, http.StatusInternalServerError, CodeInternal, "internal server error", reqID)
	}
}
