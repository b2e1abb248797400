package service

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/gorilla/websocket"
)

// NotificationHub pushes freshly persisted notifications to connected
// recipients. The durable store stays the source of truth; a client that is
// offline simply fetches on its next list call.
type NotificationHub struct {
	mu       sync.Mutex
	clients  map[string]map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients: make(map[string]map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

// HandleConnection upgrades the request and keeps the connection registered
// until the client goes away. The read loop only services ping messages and
// close frames.
func (h *NotificationHub) HandleConnection(userID string, w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	conn.SetReadLimit(4 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	h.register(userID, conn)
	defer func() {
		h.unregister(userID, conn)
		conn.Close()
	}()

	for {
		var req types.WebSocketResponse
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		if req.Type == types.TypeWebsocketPing {
			pongRes := types.WebSocketResponse{
				Type:    types.TypeWebsocketPong,
				Payload: nil,
			}
			if err := h.writeJSON(conn, pongRes); err != nil {
				log.Println("Write error:", err)
				return
			}
		}
	}
}

// Publish sends the notification to every live connection of the recipient.
// Dead connections are dropped on write failure.
func (h *NotificationHub) Publish(recipientID string, notification *types.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := types.WebSocketResponse{
		Type:    types.TypeWebsocketNotification,
		Payload: notification,
	}
	for conn := range h.clients[recipientID] {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("WebSocket push error for %s: %v", recipientID, err)
			delete(h.clients[recipientID], conn)
			conn.Close()
		}
	}
}

func (h *NotificationHub) register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*websocket.Conn]bool)
	}
	h.clients[userID][conn] = true
}

func (h *NotificationHub) unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[userID], conn)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// writeJSON serializes writes so Publish and the read-loop pong replies do
// not interleave frames on the same connection.
func (h *NotificationHub) writeJSON(conn *websocket.Conn, v interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return conn.WriteJSON(v)
}
