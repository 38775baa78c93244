package handlers

import (
	"net/http"

	"github.com/dinklabs/dinkpass/middleware"
	"github.com/dinklabs/dinkpass/services"
	"github.com/go-chi/chi/v5"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(es *services.EventService) *EventHandler {
	return &EventHandler{eventService: es}
}

// CreateHandler handles POST /events. The creator address comes from the
// authenticated session, never from the body.
func (h *EventHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	createdBy, err := middleware.GetAddressFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required to create an event")
		return
	}

	var input services.CreateEventInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	event, err := h.eventService.CreateEvent(r.Context(), createdBy, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler handles GET /events.
func (h *EventHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListEvents(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"events": events}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler handles GET /events/{eventID}.
func (h *EventHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	event, err := h.eventService.GetEvent(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
