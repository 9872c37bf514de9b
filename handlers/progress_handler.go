package handlers

import (
	websocketcontrib "github.com/gofiber/contrib/websocket"

	"github.com/kokushiworks/exam_bank/websocket"
)

// ServeProgressWs keeps a subscriber registered on the progress hub until
// the peer hangs up. Events flow one way; incoming frames are drained and
// dropped.
func ServeProgressWs(c *websocketcontrib.Conn) {
	client := &websocket.Client{Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
