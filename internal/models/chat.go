package models

// ChatMessage is a toy chat line. Messages live only for the lifetime of a
// chat session and are never persisted.
type ChatMessage struct {
	Sender string `json:"sender"` // domain.SenderMe or domain.SenderFriend
	Text   string `json:"text"`
}
