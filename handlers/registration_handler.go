package handlers

import (
	"net/http"

	"github.com/dinklabs/dinkpass/live"
	"github.com/dinklabs/dinkpass/services"
	"github.com/go-chi/chi/v5"
)

type RegistrationHandler struct {
	registrationService *services.RegistrationService
	hub                 *live.Hub // optional, nil disables roster broadcasts
}

func NewRegistrationHandler(rs *services.RegistrationService, hub *live.Hub) *RegistrationHandler {
	return &RegistrationHandler{registrationService: rs, hub: hub}
}

// RegisterHandler handles POST /events/{eventID}/registrations.
func (h *RegistrationHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	var input services.RegisterInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.EventID = eventID

	registration, err := h.registrationService.Register(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if h.hub != nil {
		count, countErr := h.registrationService.CountRegistrations(r.Context(), eventID)
		if countErr == nil {
			h.hub.BroadcastRoster(live.RosterUpdate{
				Type:                "registration_accepted",
				EventID:             eventID,
				CurrentParticipants: count,
				Registration:        registration,
			})
		}
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"registration": registration}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler handles GET /events/{eventID}/registrations, newest first. An
// unknown event returns an empty roster; clients that care check the event
// endpoint separately.
func (h *RegistrationHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	registrations, err := h.registrationService.ListRegistrations(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{
		"registrations": registrations,
		"count":         len(registrations),
	}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
