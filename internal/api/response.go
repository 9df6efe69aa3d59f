package api

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// Error is the machine-readable failure part of an envelope
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope wraps every API response
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// Error codes returned by the API
const (
	CodeInvalidJSON     = "invalid_json"
	CodeInvalidInput    = "invalid_input"
	CodeUnsupportedYear = "unsupported_year"
	CodeUnreachable     = "target_unreachable"
	CodeInternal        = "internal_error"
)

// WriteJSON writes payload with the given status
func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Warn("write json failed")
	}
}

// Success writes a 200 envelope carrying data
func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

// Fail writes an error envelope
func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}
