package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// BookingEvent is pushed to both parties whenever a booking changes
// state, so dashboards update without polling.
type BookingEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	Reference  string    `json:"reference"`
	Status     string    `json:"status"`
	ClientID   uuid.UUID `json:"-"`
	ProviderID uuid.UUID `json:"-"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *BookingEvent)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			for _, recipientID := range []uuid.UUID{event.ClientID, event.ProviderID} {
				clientsMu.RLock()
				conn, ok := clients[recipientID]
				clientsMu.RUnlock()
				if !ok {
					continue
				}
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending booking event to client %s: %v", recipientID, err)
					conn.Close()
					clientsMu.Lock()
					delete(clients, recipientID)
					clientsMu.Unlock()
				}
			}
		}
	}
}

// NotifyBookingUpdate pushes a state change to connected parties without
// blocking the caller when the hub is busy.
func NotifyBookingUpdate(event *BookingEvent) {
	select {
	case Broadcast <- event:
	default:
		log.Printf("Dropped booking event for %s: hub busy", event.Reference)
	}
}
