package handlers

import (
	"log/slog"
	"net/http"

	"github.com/AldereteMatias1/Asistencia-Futbol/live"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS for the dashboard is handled at the router level; the ws
	// endpoint accepts any origin the router let through.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub *live.Hub
}

func NewWebSocketHandler(hub *live.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// Subscribe godoc
// @Summary Suscribirse a las novedades en vivo de un partido
// @Tags live
// @Param id path int true "Match ID"
// @Router /ws/matches/{id} [get]
func (h *WebSocketHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := live.NewClient(h.hub, conn, matchID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
