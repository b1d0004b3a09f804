package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"connected/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	chatWriteWait  = 10 * time.Second
	chatPongWait   = 60 * time.Second
	chatPingPeriod = (chatPongWait * 9) / 10
)

var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// UpgradeChatWS upgrades to WebSocket for the toy chat panel. Each connection
// is its own session seeded with the welcome exchange; every sent message is
// answered by the canned friend reply after a short delay.
func UpgradeChatWS(chatHub *ws.ChatHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := chatUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		client := &ws.Client{
			ID:   uuid.NewString(),
			Send: make(chan []byte, 256),
		}
		session := chatHub.StartSession(client.ID, client)
		defer func() {
			chatHub.EndSession(client.ID)
			client.Close()
		}()
		// Send the transcript so far (the two seed messages).
		history, _ := json.Marshal(map[string]interface{}{"type": "history", "messages": session.History()})
		client.Send <- history

		conn.SetReadDeadline(time.Now().Add(chatPongWait))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(chatPongWait))
			return nil
		})
		go func() {
			ticker := time.NewTicker(chatPingPeriod)
			defer ticker.Stop()
			for {
				select {
				case msg, ok := <-client.Send:
					if !ok {
						return
					}
					conn.SetWriteDeadline(time.Now().Add(chatWriteWait))
					if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
						return
					}
				case <-ticker.C:
					conn.SetWriteDeadline(time.Now().Add(chatWriteWait))
					if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
						return
					}
				}
			}
		}()
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var incoming struct {
				Text string `json:"text"`
			}
			if err := json.Unmarshal(raw, &incoming); err != nil {
				continue
			}
			session.Say(incoming.Text)
		}
	}
}
