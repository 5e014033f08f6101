package handler

import (
	"net/http"
	"strconv"

	"github.com/tmazur/sketchbluff/internal/api/apierr"
	"github.com/tmazur/sketchbluff/internal/api/response"
	"github.com/tmazur/sketchbluff/internal/services/phrases"
)

const defaultSuggestionCount = 3

// PhrasesHandler serves phrase suggestions for players who can't
// think of anything to make their friends draw.
type PhrasesHandler struct {
	phrases *phrases.Service
}

// NewPhrasesHandler creates a new PhrasesHandler
func NewPhrasesHandler(phrasesService *phrases.Service) *PhrasesHandler {
	return &PhrasesHandler{phrases: phrasesService}
}

// SuggestionsResponse is the body of a suggestions response
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Suggestions returns up to count random phrases from the pool
func (h *PhrasesHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	count := defaultSuggestionCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 20 {
			apierr.WriteError(w, apierr.NewInvalidRequestError("count must be an integer between 1 and 20"))
			return
		}
		count = parsed
	}

	suggestions := h.phrases.Suggestions(count)
	if suggestions == nil {
		suggestions = []string{}
	}
	response.JSON(w, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}
