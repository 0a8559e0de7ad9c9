package event_api

import (
	"encoding/json"
	"net/http"

	"ms-events/internal/apperror"
	"ms-events/internal/logger"
	"ms-events/internal/models"
	"ms-events/internal/utils"
)

// EventService is the slice of the events service the handler needs.
type EventService interface {
	Create(input map[string]any) (*models.Event, error)
}

type Handler struct {
	EventService EventService
	Logger       *logger.Logger
}

func NewHandler(svc EventService, log *logger.Logger) *Handler {
	return &Handler{EventService: svc, Logger: log}
}

// CreateEvent handles POST /api/events.
//
// The body is decoded into a map with UseNumber so the validator can report
// a type failure for every field in one pass and can tell integer capacities
// apart from floats.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var input map[string]any
	if err := dec.Decode(&input); err != nil {
		utils.WriteError(w, h.Logger, apperror.BadRequest(apperror.ValidationMessage, []apperror.FieldError{
			{Field: "body", Message: "Request body must be valid JSON"},
		}))
		return
	}
	// A body is one JSON object, trailing content makes it invalid.
	if dec.More() {
		utils.WriteError(w, h.Logger, apperror.BadRequest(apperror.ValidationMessage, []apperror.FieldError{
			{Field: "body", Message: "Request body must be valid JSON"},
		}))
		return
	}

	event, err := h.EventService.Create(input)
	if err != nil {
		utils.WriteError(w, h.Logger, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, event)
}
