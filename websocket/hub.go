package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// ProgressEvent is pushed to every subscriber after each committed
// ingestion chunk.
type ProgressEvent struct {
	Event   string `json:"event"`
	Year    string `json:"exam_year"`
	Written int    `json:"written"`
	Total   int    `json:"total"`
}

const EventIngestProgress = "ingest_progress"

type Client struct {
	Conn *websocket.Conn
}

var clients = make(map[*websocket.Conn]struct{})
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan ProgressEvent, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.Conn] = struct{}{}
			clientsMu.Unlock()
			log.Printf("Progress subscriber connected (%d active)", subscriberCount())
		case client := <-Unregister:
			clientsMu.Lock()
			delete(clients, client.Conn)
			clientsMu.Unlock()
			log.Printf("Progress subscriber disconnected (%d active)", subscriberCount())
		case event := <-Broadcast:
			var dead []*websocket.Conn
			clientsMu.RLock()
			for conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending progress event: %v", err)
					conn.Close()
					dead = append(dead, conn)
				}
			}
			clientsMu.RUnlock()
			if len(dead) > 0 {
				clientsMu.Lock()
				for _, conn := range dead {
					delete(clients, conn)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// BroadcastProgress queues an event without blocking the ingest loop when
// nobody is running the hub (tests, CLI use).
func BroadcastProgress(event ProgressEvent) {
	select {
	case Broadcast <- event:
	default:
	}
}

func subscriberCount() int {
	clientsMu.RLock()
	defer clientsMu.RUnlock()
	return len(clients)
}
