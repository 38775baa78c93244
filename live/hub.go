// Package live pushes roster updates to websocket subscribers. It is a
// convenience channel on top of the pull API: the registration ledger stays
// the source of truth, and a missed broadcast costs nothing but a refresh.
package live

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/dinklabs/dinkpass/models"
)

// RosterUpdate is broadcast to an event's room after a registration is
// accepted.
type RosterUpdate struct {
	Type                string               `json:"type"`
	EventID             string               `json:"event_id"`
	CurrentParticipants int                  `json:"current_participants"`
	Registration        *models.Registration `json:"registration,omitempty"`
}

// Hub tracks subscribers per event room and fans broadcasts out to them.
type Hub struct {
	Register   chan *Client
	Unregister chan *Client

	mu     sync.RWMutex
	rooms  map[string]map[*Client]bool
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run processes subscribe/unsubscribe traffic. It is meant to run in its own
// goroutine for the lifetime of the process.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if _, ok := h.rooms[client.Room]; !ok {
				h.rooms[client.Room] = make(map[*Client]bool)
			}
			h.rooms[client.Room][client] = true
			h.logger.Debug("websocket client joined", slog.String("room", client.Room), slog.Int("subscribers", len(h.rooms[client.Room])))
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if subscribers, ok := h.rooms[client.Room]; ok {
				if _, present := subscribers[client]; present {
					client.closeSend()
					delete(subscribers, client)
					if len(subscribers) == 0 {
						delete(h.rooms, client.Room)
					}
					h.logger.Debug("websocket client left", slog.String("room", client.Room))
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastRoster sends a roster update to every subscriber of the event's
// room. Slow subscribers are skipped rather than blocking the caller.
func (h *Hub) BroadcastRoster(update RosterUpdate) {
	payload, err := json.Marshal(update)
	if err != nil {
		h.logger.Error("failed to marshal roster update", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[update.EventID] {
		client.mu.Lock()
		if !client.closed {
			select {
			case client.send <- payload:
			default:
				h.logger.Warn("dropping roster update for slow subscriber", slog.String("room", update.EventID))
			}
		}
		client.mu.Unlock()
	}
}
