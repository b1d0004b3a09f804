package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"connected/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// UpgradeViewWS upgrades the connection for the view channel. The server
// immediately sends the latest snapshot of every view, then pushes fresh ones
// as the synchronizer produces them.
func UpgradeViewWS(hub *ViewHub, initial func() []ViewMessage) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		client := &Client{
			ID:   uuid.NewString(),
			Send: make(chan []byte, 256),
		}
		hub.Register(client)
		metrics.WSClients.Inc()
		defer func() {
			client.Close()
			metrics.WSClients.Dec()
		}()
		for _, msg := range initial() {
			data, _ := json.Marshal(msg)
			client.trySend(data)
		}
		go writePump(client, conn)
		readPump(conn)
	}
}

// writePump copies messages from client.Send to the connection.
func writePump(c *Client, conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-c.Send:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func readPump(conn *websocket.Conn) {
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
