package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; nothing left but to log it.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Session messages
	ErrMsgSessionRunningError  = "A session of that kind is already running"
	ErrMsgSessionNotFoundError = "Session not found"
	ErrMsgSessionFinishedError = "That session is already finished"

	// Garden messages
	ErrMsgCellTakenError    = "That cell is occupied"
	ErrMsgOutOfBoundsError  = "That position is outside the garden"
	ErrMsgIncompatibleError = "That item cannot replace the one placed there"

	// Economy messages
	ErrMsgNotEnoughCurrencyError = "Not enough currency"
	ErrMsgPrerequisiteError      = "You need to own the previous tier first"
	ErrMsgItemNotOwnedError      = "You don't have that item"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrSessionAlreadyRunning):
		return http.StatusConflict, ErrMsgSessionRunningError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrSessionFinished):
		return http.StatusConflict, ErrMsgSessionFinishedError
	case errors.Is(err, domain.ErrCellTaken):
		return http.StatusConflict, ErrMsgCellTakenError
	case errors.Is(err, domain.ErrOutOfBounds):
		return http.StatusBadRequest, ErrMsgOutOfBoundsError
	case errors.Is(err, domain.ErrIncompatibleReplacement):
		return http.StatusConflict, ErrMsgIncompatibleError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCurrencyError
	case errors.Is(err, domain.ErrMissingPrerequisite):
		return http.StatusBadRequest, ErrMsgPrerequisiteError
	case errors.Is(err, domain.ErrItemNotOwned):
		return http.StatusBadRequest, ErrMsgItemNotOwnedError
	case errors.Is(err, domain.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName+" failed", "error", err)
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}
