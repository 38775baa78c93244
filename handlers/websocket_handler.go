package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dinklabs/dinkpass/live"
	"github.com/dinklabs/dinkpass/services"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the frontend origin before exposing this publicly.
		return true
	},
}

type WebSocketHandler struct {
	hub          *live.Hub
	eventService *services.EventService
	logger       *slog.Logger
}

func NewWebSocketHandler(hub *live.Hub, es *services.EventService, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, eventService: es, logger: logger}
}

// ServeWs handles GET /ws/events/{eventID}: it subscribes the caller to
// roster updates for one event.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	if _, err := h.eventService.GetEvent(r.Context(), eventID); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			notFoundResponse(w, r)
			return
		}
		serverErrorResponse(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		h.logger.Warn("websocket upgrade failed", slog.String("event_id", eventID), slog.Any("error", err))
		return
	}

	client := live.NewClient(h.hub, conn, eventID, h.logger)
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
