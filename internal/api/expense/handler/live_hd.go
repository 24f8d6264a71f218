package expenseHandler

import (
	"budgefy/internal/entity"
	"budgefy/pkg/log"

	"github.com/gofiber/websocket/v2"
)

// HandleLive streams expense change events to the connected client.
// The subscription lives as long as the socket; a client that stops
// reading has events dropped by the broker rather than stalling writers.
func (h *ExpenseHandler) HandleLive(conn *websocket.Conn) {
	defer conn.Close()

	userData, ok := conn.Locals("user").(entity.UserLoginData)
	if !ok {
		h.log.Warn("Live connection without user data")
		return
	}

	events, unsubscribe := h.expenseService.Subscribe(userData.ID)
	defer unsubscribe()

	h.log.WithFields(log.Fields{
		"user_id": userData.ID,
	}).Info("Live expense stream opened")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, open := <-events:
			if !open {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				h.log.WithFields(log.Fields{
					"user_id": userData.ID,
					"error":   err.Error(),
				}).Warn("Failed to write live event")
				return
			}
		case <-done:
			h.log.WithFields(log.Fields{
				"user_id": userData.ID,
			}).Info("Live expense stream closed")
			return
		}
	}
}
