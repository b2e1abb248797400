package types

const (
	TypeWebsocketPing         = "ping"
	TypeWebsocketPong         = "pong"
	TypeWebsocketNotification = "notification"
	TypeWebsocketError        = "error"
)

type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
