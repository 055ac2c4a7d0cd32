package live

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/AldereteMatias1/Asistencia-Futbol/models"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

const (
	EventMatchUpdated         = "MATCH_UPDATED"
	EventParticipationUpdated = "PARTICIPATION_UPDATED"
)

// Message is the envelope pushed to dashboard clients watching a match.
type Message struct {
	Type    string      `json:"type"`
	MatchID int         `json:"match_id"`
	Payload interface{} `json:"payload"`
}

// Client is one websocket subscriber, pinned to a single match room.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	matchID int

	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, matchID int) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, 16),
		matchID: matchID,
	}
}

// Hub fans committed match and participation changes out to the clients
// subscribed to each match. It implements services.LiveNotifier.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	rooms      map[int]map[*Client]bool
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[int]map[*Client]bool),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.matchID]; !ok {
				h.rooms[client.matchID] = make(map[*Client]bool)
			}
			h.rooms[client.matchID][client] = true
			h.logger.Debug("live client registered",
				slog.Int("match_id", client.matchID),
				slog.Int("room_size", len(h.rooms[client.matchID])))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[client.matchID]; ok {
				if _, okClient := room[client]; okClient {
					client.close()
					delete(room, client)
					if len(room) == 0 {
						delete(h.rooms, client.matchID)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register enqueues the client; Run owns the room bookkeeping.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// MatchUpdated implements services.LiveNotifier.
func (h *Hub) MatchUpdated(match *models.Match) {
	h.broadcast(match.ID, Message{Type: EventMatchUpdated, MatchID: match.ID, Payload: match})
}

// ParticipationUpdated implements services.LiveNotifier.
func (h *Hub) ParticipationUpdated(matchID int, p *models.Participation) {
	h.broadcast(matchID, Message{Type: EventParticipationUpdated, MatchID: matchID, Payload: p})
}

func (h *Hub) broadcast(matchID int, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	room, ok := h.rooms[matchID]
	if !ok {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal live message", slog.Any("error", err))
		return
	}

	for client := range room {
		client.mu.Lock()
		if client.closed {
			client.mu.Unlock()
			continue
		}
		select {
		case client.send <- data:
		default:
			// Slow consumer; drop the message rather than block the writer.
		}
		client.mu.Unlock()
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		close(c.send)
		c.closed = true
	}
}

// ReadPump drains inbound frames. Clients are read-only subscribers, so
// everything they send is discarded; the pump exists to notice disconnects
// and answer pings.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
