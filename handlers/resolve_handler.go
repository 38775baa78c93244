package handlers

import (
	"context"
	"errors"
	"net/http"
)

// IdentifierResolver mirrors the resolver contract the handler needs.
type IdentifierResolver interface {
	Resolve(ctx context.Context, input string) string
}

type ResolveHandler struct {
	resolver IdentifierResolver
}

func NewResolveHandler(resolver IdentifierResolver) *ResolveHandler {
	return &ResolveHandler{resolver: resolver}
}

// ResolveHandler handles GET /resolve?name=. An unresolvable name yields a
// null address with status 200: being unresolved is an expected outcome, not
// an error.
func (h *ResolveHandler) ResolveHandler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		badRequestResponse(w, r, errors.New("query parameter 'name' is required"))
		return
	}

	address := h.resolver.Resolve(r.Context(), name)

	var payload interface{}
	if address != "" {
		payload = address
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"address": payload}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
