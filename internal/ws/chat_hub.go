package ws

import (
	"encoding/json"
	"sync"
	"time"

	"connected/internal/domain"
	"connected/internal/models"
)

// friendReplyDelay simulates the friend typing before the canned reply.
const friendReplyDelay = time.Second

// ChatSession is one connection's toy conversation. Messages live in memory
// only and every session starts from the same two seed lines.
type ChatSession struct {
	ID       string
	client   *Client
	mu       sync.Mutex
	messages []models.ChatMessage
}

func seedMessages() []models.ChatMessage {
	return []models.ChatMessage{
		{Sender: domain.SenderFriend, Text: "Hi there! Welcome to Connected."},
		{Sender: domain.SenderMe, Text: "Hello! Glad to be here."},
	}
}

// ChatHub tracks active chat sessions by session id.
type ChatHub struct {
	mu       sync.RWMutex
	sessions map[string]*ChatSession
}

func NewChatHub() *ChatHub {
	return &ChatHub{sessions: make(map[string]*ChatSession)}
}

func (h *ChatHub) StartSession(id string, client *Client) *ChatSession {
	s := &ChatSession{ID: id, client: client, messages: seedMessages()}
	h.mu.Lock()
	h.sessions[id] = s
	h.mu.Unlock()
	return s
}

func (h *ChatHub) EndSession(id string) {
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()
}

func (h *ChatHub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// History returns the session transcript so far.
func (s *ChatSession) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Say records an outgoing message, echoes it back, and schedules the canned
// friend reply after a short delay.
func (s *ChatSession) Say(text string) {
	if text == "" {
		return
	}
	mine := models.ChatMessage{Sender: domain.SenderMe, Text: text}
	s.mu.Lock()
	s.messages = append(s.messages, mine)
	s.mu.Unlock()
	s.push(mine)

	time.AfterFunc(friendReplyDelay, func() {
		reply := models.ChatMessage{Sender: domain.SenderFriend, Text: "Thanks for your message!"}
		s.mu.Lock()
		s.messages = append(s.messages, reply)
		s.mu.Unlock()
		s.push(reply)
	})
}

func (s *ChatSession) push(msg models.ChatMessage) {
	if s.client == nil {
		return
	}
	data, _ := json.Marshal(map[string]interface{}{"type": "message", "message": msg})
	s.client.trySend(data)
}
