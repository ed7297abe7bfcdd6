package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// HTTPHandler maps StandardError values to HTTP failure responses.
type HTTPHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewHTTPHandler(logger Logger) *HTTPHandler {
	return &HTTPHandler{logger: logger}
}

// ErrorResponse is the wire shape of every failure response. Clients
// check the detail string; status carries the machine category.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HTTPStatusFor maps internal error codes to HTTP status codes.
func HTTPStatusFor(code ErrorCode) int {
	switch code {
	case ErrCodeActivityNotFound, ErrCodeParticipantNotFound:
		return http.StatusNotFound
	case ErrCodeAlreadySignedUp, ErrCodeValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError normalizes err to a StandardError and writes the JSON
// failure body. Internal errors are logged; expected request failures
// are left to the access log.
func (h *HTTPHandler) WriteError(w http.ResponseWriter, err error) {
	stdErr := h.normalizeError(err)
	status := HTTPStatusFor(stdErr.Code)

	if status == http.StatusInternalServerError && h.logger != nil {
		h.logger.Error("request failed", map[string]interface{}{
			"errorCode": string(stdErr.Code),
			"message":   stdErr.Message,
			"details":   stdErr.Details,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: stdErr.Message})
}

// normalizeError ensures we always have a StandardError
func (h *HTTPHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
