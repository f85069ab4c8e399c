package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/wricardo/mcp-training/game2048/game/engine"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the outgoing frame sent to every client of a session
type Message struct {
	SessionID   string              `json:"session_id"`
	Event       string              `json:"event,omitempty"`
	GameState   *engine.GameState   `json:"game_state,omitempty"`
	Transitions []engine.Transition `json:"transitions,omitempty"`
	Data        any                 `json:"data,omitempty"`
}

// InputMessage is a frame sent by the browser. Action takes precedence over Key.
type InputMessage struct {
	Action string `json:"action,omitempty"`
	Key    string `json:"key,omitempty"`
}

// Input returns the command text carried by the message
func (m InputMessage) Input() string {
	if a := strings.TrimSpace(m.Action); a != "" {
		return a
	}
	return strings.TrimSpace(m.Key)
}

// InputHandler receives input injected by a client of sessionID
type InputHandler func(sessionID, clientID, input string)

// Client represents a WebSocket client
type Client struct {
	id        string
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
}

type countQuery struct {
	sessionID string
	reply     chan int
}

// Hub maintains the set of active clients per session. The client maps are
// owned by the Run goroutine; everything else talks to it over channels.
type Hub struct {
	sessions map[string]map[*Client]bool

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
	counts     chan countQuery

	onInput InputHandler
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, engine.WebSocketBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		counts:     make(chan countQuery),
	}
}

// SetInputHandler installs the callback for client input. It must be called
// before clients connect.
func (h *Hub) SetInputHandler(handler InputHandler) {
	h.onInput = handler
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case q := <-h.counts:
			q.reply <- len(h.sessions[q.sessionID])
		}
	}
}

// ServeWS upgrades the request and attaches the connection to sessionID
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, sessionID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		id:        uuid.NewString(),
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, engine.WebSocketBufferSize),
		sessionID: sessionID,
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// BroadcastToSession queues a state update for every client of a session
func (h *Hub) BroadcastToSession(sessionID, event string, state *engine.GameState, transitions []engine.Transition) {
	h.broadcast <- &Message{
		SessionID:   sessionID,
		Event:       event,
		GameState:   state,
		Transitions: transitions,
	}
}

// BroadcastEvent sends a custom event to all clients in a session
func (h *Hub) BroadcastEvent(sessionID, event string, data any) {
	h.broadcast <- &Message{
		SessionID: sessionID,
		Event:     event,
		Data:      data,
	}
}

// ClientCount returns the number of clients attached to a session. It
// requires Run to be active.
func (h *Hub) ClientCount(sessionID string) int {
	reply := make(chan int)
	h.counts <- countQuery{sessionID: sessionID, reply: reply}
	return <-reply
}

func (h *Hub) registerClient(client *Client) {
	if h.sessions[client.sessionID] == nil {
		h.sessions[client.sessionID] = make(map[*Client]bool)
	}
	h.sessions[client.sessionID][client] = true

	log.Printf("Client %s registered for session %s (total clients: %d)",
		client.id, client.sessionID, len(h.sessions[client.sessionID]))
}

func (h *Hub) unregisterClient(client *Client) {
	clients, ok := h.sessions[client.sessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)

	if len(clients) == 0 {
		delete(h.sessions, client.sessionID)
	}

	log.Printf("Client %s unregistered from session %s (remaining clients: %d)",
		client.id, client.sessionID, len(clients))
}

func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal broadcast message: %v", err)
		return
	}

	for client := range h.sessions[message.SessionID] {
		select {
		case client.send <- data:
		default:
			// Slow client
			h.unregisterClient(client)
		}
	}
}

// readPump forwards client input to the hub's input handler
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for client %s: %v", c.id, err)
			}
			break
		}

		var msg InputMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("Ignoring malformed message from client %s: %v", c.id, err)
			continue
		}
		if input := msg.Input(); input != "" && c.hub.onInput != nil {
			c.hub.onInput(c.sessionID, c.id, input)
		}
	}
}

// writePump pumps messages from the hub to the WebSocket connection
func (c *Client) writePump() {
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

			// One JSON document per frame so clients can parse each message
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
