package api

import (
	"context"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// ListConversations returns the caller's message threads, most recent first.
func (c *Client) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	var out []models.Conversation
	if err := c.get(ctx, "/conversations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StartConversation opens (or returns the existing) thread with a user.
func (c *Client) StartConversation(ctx context.Context, peerID string) (*models.Conversation, error) {
	var out models.Conversation
	if err := c.post(ctx, "/conversations", models.StartConversationRequest{PeerID: peerID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMessages returns one page of a thread's messages, newest first.
func (c *Client) ListMessages(ctx context.Context, conversationID string, page, size int) (*models.Page[models.Message], error) {
	var out models.Page[models.Message]
	if err := c.get(ctx, "/conversations/"+pathParam(conversationID)+"/messages", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendMessage posts a message to a thread.
func (c *Client) SendMessage(ctx context.Context, conversationID, body string) (*models.Message, error) {
	var out models.Message
	if err := c.post(ctx, "/conversations/"+pathParam(conversationID)+"/messages", models.SendMessageRequest{Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
