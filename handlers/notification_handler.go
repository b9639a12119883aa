package handlers

import (
	ws "github.com/fliqhq/fliq-backend/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// WebsocketUpgrade gates the upgrade so only websocket handshakes reach
// the connection handler.
func WebsocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("user_id", currentUserID(c))
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleNotificationSocket keeps a connection registered with the hub
// until the client disconnects. The server only pushes; inbound frames
// are drained and discarded.
var HandleNotificationSocket = websocket.New(func(conn *websocket.Conn) {
	userID := conn.Locals("user_id").(uuid.UUID)

	client := &ws.Client{UserID: userID, Conn: conn}
	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
})
