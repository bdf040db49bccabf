package models

import "time"

// Conversation is a direct-message thread between two users.
type Conversation struct {
	ID          string    `json:"id"`
	PeerID      string    `json:"peerId"`
	PeerName    string    `json:"peerName"`
	LastMessage string    `json:"lastMessage"`
	UnreadCount int       `json:"unreadCount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Message is a single chat message within a conversation.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"createdAt"`
}

// StartConversationRequest opens (or returns) the thread with a user.
type StartConversationRequest struct {
	PeerID string `json:"peerId"`
}

// SendMessageRequest is the body for posting a message to a thread.
type SendMessageRequest struct {
	Body string `json:"body"`
}
