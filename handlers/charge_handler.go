package handlers

import (
	"net/http"

	"github.com/dinklabs/dinkpass/services"
)

type ChargeHandler struct {
	chargeService *services.ChargeService
}

func NewChargeHandler(cs *services.ChargeService) *ChargeHandler {
	return &ChargeHandler{chargeService: cs}
}

// CreateHandler handles POST /charges. The response shape matches the
// checkout widget contract: {"data": {"id": "chr_..."}}.
func (h *ChargeHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateChargeInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	charge, err := h.chargeService.CreateCharge(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{
		"data": jsonResponse{"id": charge.ID},
	}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
