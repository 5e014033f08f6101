// Package apierr maps domain errors onto the HTTP error surface.
package apierr

import (
	"errors"
	"net/http"

	"github.com/tmazur/sketchbluff/internal/api/response"
	"github.com/tmazur/sketchbluff/internal/model"
)

// Error codes returned in API error responses
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeRoomNotFound        = "ROOM_NOT_FOUND"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodePhraseNotFound      = "PHRASE_NOT_FOUND"
	CodeInvalidPhase        = "INVALID_PHASE"
	CodeNotHost             = "NOT_HOST"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeDuplicateSubmission = "DUPLICATE_SUBMISSION"
	CodeNotEligible         = "NOT_ELIGIBLE"
	CodeInternalError       = "INTERNAL_ERROR"
)

// APIError is an error with an HTTP status and a stable code
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrorResponse is the JSON body of an error response
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &APIError{Status: http.StatusBadRequest, Code: CodeInvalidRequest, Message: message}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &APIError{Status: http.StatusInternalServerError, Code: CodeInternalError, Message: "internal server error"}
}

// FromDomain translates a domain error into an APIError
func FromDomain(err error) *APIError {
	switch {
	case errors.Is(err, model.ErrRoomNotFound):
		return &APIError{Status: http.StatusNotFound, Code: CodeRoomNotFound, Message: "room not found"}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &APIError{Status: http.StatusNotFound, Code: CodePlayerNotFound, Message: "player not found"}
	case errors.Is(err, model.ErrPhraseNotFound):
		return &APIError{Status: http.StatusNotFound, Code: CodePhraseNotFound, Message: "phrase not found"}
	case errors.Is(err, model.ErrInvalidPhase):
		return &APIError{Status: http.StatusConflict, Code: CodeInvalidPhase, Message: "operation not allowed in the room's current state"}
	case errors.Is(err, model.ErrNotHost):
		return &APIError{Status: http.StatusForbidden, Code: CodeNotHost, Message: "only the host may do this"}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &APIError{Status: http.StatusConflict, Code: CodeInsufficientPlayers, Message: "not enough players to start"}
	case errors.Is(err, model.ErrDuplicateSubmission):
		return &APIError{Status: http.StatusConflict, Code: CodeDuplicateSubmission, Message: "already submitted"}
	case errors.Is(err, model.ErrNotEligible):
		return &APIError{Status: http.StatusForbidden, Code: CodeNotEligible, Message: "not eligible for this round"}
	default:
		return &APIError{Status: http.StatusInternalServerError, Code: CodeInternalError, Message: "internal server error"}
	}
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = FromDomain(err)
	}
	response.JSON(w, apiErr.Status, ErrorResponse{Error: *apiErr})
}
