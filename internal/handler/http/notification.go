package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/netsg-cyber/Holidays-app/internal/domain/auth"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/middleware"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/response"
	"github.com/netsg-cyber/Holidays-app/internal/pkg/sse"
)

const sseHeartbeatInterval = 30 * time.Second

type NotificationHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	hub *sse.Hub
}

func NewNotificationHandler(hub *sse.Hub) NotificationHandler {
	return &NotificationHandlerImpl{hub: hub}
}

// Stream implements NotificationHandler. Holds the connection open and
// pushes request events for the authenticated user until the client
// goes away.
func (h *NotificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := middleware.SnapshotFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrNotAuthenticated)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, cleanup := h.hub.Subscribe(snapshot.User.ID)
	defer cleanup()

	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		case event, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, payload)
			flusher.Flush()
		}
	}
}
